package store

import (
	"fmt"

	"github.com/MKhiriev/go-feed-sync/models"
)

// Sizes of the built-in dataset: ten pages of twenty characters, so that the
// default decoration of every tenth page is reachable.
const (
	builtinCharacters = 200
	builtinLocations  = 60
)

var (
	characterNames = []string{
		"Rick Sanchez", "Morty Smith", "Summer Smith", "Beth Smith", "Jerry Smith",
		"Abadango Cluster Princess", "Abradolf Lincler", "Adjudicator Rick", "Agency Director",
		"Alan Rails", "Albert Einstein", "Alexander", "Alien Googah", "Alien Morty",
		"Alien Rick", "Amish Cyborg", "Annie", "Antenna Morty", "Antenna Rick", "Ants in my Eyes Johnson",
	}
	characterSpecies = []string{"Human", "Alien", "Humanoid", "Robot", "Cronenberg", "Mythological Creature"}
	characterStatus  = []string{"Alive", "Alive", "Dead", "unknown"}

	locationNames = []string{
		"Earth (C-137)", "Abadango", "Citadel of Ricks", "Worldender's lair", "Anatomy Park",
		"Interdimensional Cable", "Immortality Field Resort", "Post-Apocalyptic Earth",
		"Purge Planet", "Venzenulon 7", "Bepis 9", "Cronenberg Earth",
	}
	locationTypes      = []string{"Planet", "Cluster", "Space station", "Microverse", "TV", "Resort", "Dream"}
	locationDimensions = []string{"Dimension C-137", "unknown", "Post-Apocalyptic Dimension", "Replacement Dimension"}
)

// BuiltinDataset returns the deterministic dataset the feed server uses when
// no dataset file is configured. Locations reuse the record fields: Status
// holds the dimension and Species the location type.
func BuiltinDataset() map[string][]models.FeedRecord {
	return map[string][]models.FeedRecord{
		"character": generate(builtinCharacters, func(i int, id int64) models.FeedRecord {
			return models.FeedRecord{
				ID:      id,
				Name:    variantName(characterNames, i),
				Status:  characterStatus[i%len(characterStatus)],
				Species: characterSpecies[i%len(characterSpecies)],
				Image:   fmt.Sprintf("https://rickandmortyapi.com/api/character/avatar/%d.jpeg", id),
			}
		}),
		"location": generate(builtinLocations, func(i int, id int64) models.FeedRecord {
			return models.FeedRecord{
				ID:      id,
				Name:    variantName(locationNames, i),
				Status:  locationDimensions[i%len(locationDimensions)],
				Species: locationTypes[i%len(locationTypes)],
			}
		}),
	}
}

func generate(n int, build func(i int, id int64) models.FeedRecord) []models.FeedRecord {
	out := make([]models.FeedRecord, n)
	for i := range n {
		out[i] = build(i, int64(i+1))
	}
	return out
}

// variantName cycles through names and numbers every repetition after the
// first, e.g. "Rick Sanchez", ..., "Rick Sanchez (2)".
func variantName(names []string, i int) string {
	name := names[i%len(names)]
	if round := i / len(names); round > 0 {
		return fmt.Sprintf("%s (%d)", name, round+1)
	}
	return name
}
