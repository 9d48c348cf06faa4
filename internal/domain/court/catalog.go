package court

import "time"

const (
	SeedPadelID    = "court_padel_001"
	SeedFootballID = "court_football_001"
)

const padelImage = "https://images.unsplash.com/photo-1554068865-24cecd4e34b8?w=800"

// DefaultCatalog is inserted at startup when missing.
func DefaultCatalog(now time.Time) []*Court {
	image := padelImage
	seeds := []struct {
		id   string
		spec Spec
	}{
		{
			id: SeedPadelID,
			spec: Spec{
				Name:        LocalizedText{Ar: "ملعب البادل", En: "Padel Court"},
				Description: LocalizedText{Ar: "ملعب بادل احترافي مع إضاءة ليلية", En: "Professional padel court with night lighting"},
				Category:    string(CategoryPadel),
				ImageURL:    &image,
			},
		},
		{
			id: SeedFootballID,
			spec: Spec{
				Name:        LocalizedText{Ar: "ملعب كرة القدم", En: "Football Court"},
				Description: LocalizedText{Ar: "ملعب كرة قدم خماسي بعشب صناعي", En: "Five-a-side football pitch with artificial turf"},
				Category:    string(CategoryFootball),
			},
		},
	}

	courts := make([]*Court, 0, len(seeds))
	for _, s := range seeds {
		c, err := newCourtWithID(s.id, s.spec, now)
		if err != nil {
			panic("invalid seed court " + s.id + ": " + err.Error())
		}
		courts = append(courts, c)
	}
	return courts
}
