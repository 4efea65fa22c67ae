package content

// Default is the bundled dataset served when nothing has been published yet
// and seeded into the database by cmd/seed. Also the source of the
// per-section fallbacks applied by Normalize.
func Default() SiteContent {
	return SiteContent{
		LogoDark:  "",
		LogoLight: "",
		Favicon:   "",
		HeroImages: []string{
			"https://images.unsplash.com/photo-1555244162-803834f70033?q=80&w=2070&auto=format&fit=crop",
		},
		AboutImage:   "https://images.unsplash.com/photo-1560624052-449f5ddf0c31?q=80&w=1635&auto=format&fit=crop",
		ContactImage: "https://images.unsplash.com/photo-1556761175-5973dc0f32e7?q=80&w=2664&auto=format&fit=crop",
		Text: TextContent{
			HeroTitle:    "Catering, který vytváří zážitky",
			HeroSubtitle: "Gastronomie na úrovni pro galavečeře, firemní akce i soukromé oslavy.",
			AboutTitle:   "O nás",
			AboutText:    "Jsme tým profesionálů s dlouholetou zkušeností v gastronomii. Každou akci připravujeme na míru, od menu po servis.",
		},
		Team: TeamContent{
			TeamImage:    "https://images.unsplash.com/photo-1577219491135-ce391730fb2c?q=80&w=2577&auto=format&fit=crop",
			ManagerImage: "https://images.unsplash.com/photo-1560250097-0b93528c311a?q=80&w=200&auto=format&fit=crop",
			ManagerName:  "David Schwarczinger",
			ManagerRole:  "Event & Catering Manager",
			ManagerQuote: "Event manažer, který se postará o každý detail vaší akce. Jeho organizační schopnosti a smysl pro estetiku zaručují dokonalý průběh.",
			TeamMotto:    "Vaše spokojenost je naší největší odměnou.",
		},
		Locations: []LocationItem{
			{
				ID:          "1",
				Title:       "Rudolfova slévárna",
				Description: "Historické prostory Pražského hradu, ideální pro galavečeře a prestižní firemní akce. Jedinečná atmosféra v srdci Prahy.",
				ImageURLs: []string{
					"https://images.unsplash.com/photo-1590623253754-52d37c68b75c?q=80&w=1974&auto=format&fit=crop",
				},
			},
			{
				ID:          "2",
				Title:       "Sál Sirius",
				Description: "Moderní a flexibilní prostory v Pardubicích, vhodné pro konference, plesy a velké oslavy. Nejmodernější technické vybavení.",
				ImageURLs: []string{
					"https://images.unsplash.com/photo-1497366216548-37526070297c?q=80&w=2069&auto=format&fit=crop",
				},
			},
			{
				ID:          "3",
				Title:       "Speciální vlaky",
				Description: "Catering v pohybu - nezapomenutelné zážitky na palubě historických i moderních vlaků. Originální řešení pro netradiční události.",
				ImageURLs: []string{
					"https://images.unsplash.com/photo-1474487548417-781cb71495f3?q=80&w=2184&auto=format&fit=crop",
				},
			},
		},
		Clients: []ClientItem{},
		Projects: []PortfolioItem{
			{
				ID:          "1",
				Title:       "Galavečeře pro Qatar Airways Cargo",
				Client:      "Qatar Airways Cargo",
				Date:        "3. 4. 2025",
				Guests:      300,
				Location:    "Rudolfova slévárna, Pražský hrad",
				Description: "Luxusní galavečeře v historických prostorách, která uchvátila hosty z celého světa. Kulinářský zážitek hodný královského sídla.",
				ImageURLs: []string{
					"https://images.unsplash.com/photo-1519225469958-319ea327d92f?q=80&w=2070&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1414235077428-338989a2e8c0?q=80&w=2070&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1559339352-11d035aa65de?q=80&w=1974&auto=format&fit=crop",
				},
				Tags:     []string{"Galavečeře", "VIP", "300 Hostů"},
				Position: 0,
			},
			{
				ID:          "2",
				Title:       "Jízda s tříchodovým menu v Ringhofferu",
				Description: "Nostalgická jízda historickým jídelním vozem Ringhoffer s exkluzivním tříchodovým menu. Jedinečná kombinace cestování a gastronomie.",
				ImageURLs: []string{
					"https://images.unsplash.com/photo-1485394582334-706d4e8c1050?q=80&w=1925&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1474487548417-781cb71495f3?q=80&w=2184&auto=format&fit=crop",
				},
				Tags:     []string{"Historický vlak", "Zážitková gastronomie"},
				Position: 1,
			},
		},
		Inquiries: []Inquiry{},
	}
}
