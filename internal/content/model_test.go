package content

import "testing"

func TestCloneIsDeep(t *testing.T) {
	original := Default()
	clone := original.Clone()

	clone.HeroImages[0] = "changed"
	clone.Locations[0].ImageURLs[0] = "changed"
	clone.Projects[0].Tags[0] = "changed"

	if original.HeroImages[0] == "changed" {
		t.Fatal("hero images shared between clone and original")
	}
	if original.Locations[0].ImageURLs[0] == "changed" {
		t.Fatal("location galleries shared between clone and original")
	}
	if original.Projects[0].Tags[0] == "changed" {
		t.Fatal("project tags shared between clone and original")
	}
}

func TestPublicViewStripsInquiries(t *testing.T) {
	c := Default()
	c.Inquiries = []Inquiry{{ID: "1", Email: "a@example.com"}}

	view := c.PublicView()

	if len(view.Inquiries) != 0 {
		t.Fatalf("public view exposes %d inquiries", len(view.Inquiries))
	}
	if len(view.Projects) != len(c.Projects) {
		t.Fatal("public view must keep the portfolio")
	}
}

func TestNormalizeFillsMissingSections(t *testing.T) {
	var c SiteContent
	c.Normalize()

	def := Default()
	if c.Text.HeroTitle != def.Text.HeroTitle {
		t.Fatalf("hero title = %q, want default", c.Text.HeroTitle)
	}
	if c.Team.ManagerName != def.Team.ManagerName {
		t.Fatalf("manager name = %q, want default", c.Team.ManagerName)
	}
	if len(c.Locations) != len(def.Locations) {
		t.Fatalf("locations = %d, want %d defaults", len(c.Locations), len(def.Locations))
	}
	if c.Projects == nil || c.Inquiries == nil || c.Clients == nil {
		t.Fatal("entity slices must be non-nil after Normalize")
	}
}

func TestNormalizeKeepsExistingSections(t *testing.T) {
	c := SiteContent{Text: TextContent{HeroTitle: "Vlastní titulek"}}
	c.Normalize()

	if c.Text.HeroTitle != "Vlastní titulek" {
		t.Fatalf("hero title = %q, existing section must not be overwritten", c.Text.HeroTitle)
	}
}

func TestNormalizeDefaultsInquiryStatus(t *testing.T) {
	c := Default()
	c.Inquiries = []Inquiry{{ID: "1"}, {ID: "2", Status: StatusSolved}}
	c.Normalize()

	if c.Inquiries[0].Status != StatusNew {
		t.Fatalf("status = %q, want %q", c.Inquiries[0].Status, StatusNew)
	}
	if c.Inquiries[1].Status != StatusSolved {
		t.Fatalf("status = %q, existing status must stay", c.Inquiries[1].Status)
	}
}

func TestCoverImage(t *testing.T) {
	p := PortfolioItem{ImageURLs: []string{"first.jpg", "second.jpg"}}
	if got := p.CoverImage(); got != "first.jpg" {
		t.Fatalf("cover = %q, want first gallery image", got)
	}

	empty := PortfolioItem{}
	if got := empty.CoverImage(); got != "" {
		t.Fatalf("cover = %q, want empty for no images", got)
	}

	loc := LocationItem{ImageURLs: []string{"hall.jpg"}}
	if got := loc.CoverImage(); got != "hall.jpg" {
		t.Fatalf("location cover = %q, want first gallery image", got)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{StatusNew, StatusSolved, StatusIrrelevant} {
		if !IsValidStatus(status) {
			t.Fatalf("%q should be valid", status)
		}
	}
	if IsValidStatus("archived") {
		t.Fatal("unknown status accepted")
	}
}
