package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MatcherTestSuite exercises the name matching rules
type MatcherTestSuite struct {
	suite.Suite
}

func (s *MatcherTestSuite) TestNormalize() {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"LowercasesAndTrims", "  Whole Milk  ", "milk"},
		{"StripsParenthetical", "butter (softened)", "butter"},
		{"StripsDescriptors", "organic fresh garlic", "garlic"},
		{"StripsSizeWords", "large eggs", "eggs"},
		{"StripsPackaging", "can of tomato paste", "tomato paste"},
		{"StripsNumbers", "2 onions", "onions"},
		{"ReplacesPunctuation", "all-purpose flour", "all purpose flour"},
		{"CollapsesWhitespace", "ground   beef", "beef"},
		{"EmptyInput", "", ""},
		{"OnlyNoise", "2 large (ripe)", ""},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			assert.Equal(s.T(), tt.expected, Normalize(tt.input))
		})
	}
}

func (s *MatcherTestSuite) TestExtractName() {
	s.Run("StripsMeasurementNoise", func() {
		got := ExtractName("2 cups all-purpose flour, sifted")

		assert.Contains(s.T(), got, "flour")
		assert.NotContains(s.T(), got, "cups")
		assert.NotContains(s.T(), got, "2")
		assert.NotContains(s.T(), got, "sifted")
	})

	s.Run("StripsFractionGlyphs", func() {
		got := ExtractName("½ cup sugar")
		assert.Equal(s.T(), "sugar", got)
	})

	s.Run("StripsSlashFractions", func() {
		got := ExtractName("1/3 cup milk")
		assert.Equal(s.T(), "milk", got)
	})

	s.Run("StripsPreparationWords", func() {
		got := ExtractName("4 cube steaks (pounded thin)")
		assert.Equal(s.T(), "cube steaks", got)
	})

	s.Run("StripsUnitAbbreviations", func() {
		got := ExtractName("8 oz cream cheese, softened")
		assert.Equal(s.T(), "cream cheese", got)
	})

	s.Run("StripsFillerPhrases", func() {
		got := ExtractName("salt to taste")
		assert.Equal(s.T(), "salt", got)
	})

	s.Run("EmptyInput", func() {
		assert.Equal(s.T(), "", ExtractName(""))
	})
}

func (s *MatcherTestSuite) TestIsSpecialty() {
	s.Run("SpecialtyFlour", func() {
		assert.True(s.T(), IsSpecialty("almond flour"))
	})

	s.Run("AlternativeMilk", func() {
		assert.True(s.T(), IsSpecialty("Oat Milk"))
	})

	s.Run("CompoundDairy", func() {
		assert.True(s.T(), IsSpecialty("buttermilk"))
	})

	s.Run("PlainStapleIsNot", func() {
		assert.False(s.T(), IsSpecialty("flour"))
		assert.False(s.T(), IsSpecialty("milk"))
	})

	// Substring containment is deliberate: a long compound name containing a
	// specialty entry is treated as specialty too.
	s.Run("SubstringContainmentIsSpecialty", func() {
		assert.True(s.T(), IsSpecialty("unsweetened almond milk vanilla"))
	})

	s.Run("EmptyInput", func() {
		assert.False(s.T(), IsSpecialty(""))
	})
}

func (s *MatcherTestSuite) TestCanMatchExact() {
	s.Run("IdenticalNames", func() {
		assert.True(s.T(), CanMatch("flour", "flour"))
	})

	s.Run("NormalizationEquivalent", func() {
		assert.True(s.T(), CanMatch("Fresh Garlic", "garlic"))
	})

	s.Run("SpecialtyExactMatchStillWins", func() {
		assert.True(s.T(), CanMatch("almond flour", "Almond Flour"))
	})
}

func (s *MatcherTestSuite) TestCanMatchSpecialtyIsolation() {
	tests := []struct {
		name string
		a, b string
	}{
		{"AlmondFlourVsFlour", "almond flour", "flour"},
		{"CoconutMilkVsMilk", "coconut milk", "milk"},
		{"PowderedSugarVsSugar", "powdered sugar", "sugar"},
		{"VeganButterVsButter", "vegan butter", "butter"},
		{"BakingPowderVsBakingSoda", "baking powder", "baking soda"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			assert.False(s.T(), CanMatch(tt.a, tt.b))
			assert.False(s.T(), CanMatch(tt.b, tt.a))
		})
	}
}

func (s *MatcherTestSuite) TestCanMatchCrossMatchSuppression() {
	tests := []struct {
		name string
		a, b string
	}{
		{"PeanutButterVsButter", "peanut butter", "butter"},
		{"GreenOnionsVsOnion", "green onions", "onion"},
		{"ButtermilkVsMilk", "buttermilk", "milk"},
		{"GroundBeefVsSteak", "ground beef", "steak"},
		{"BaconVsGroundPork", "bacon", "ground pork"},
		{"ChickenBreastVsThighs", "chicken breast", "chicken thighs"},
		{"PorkVsChicken", "pork", "chicken"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			assert.False(s.T(), CanMatch(tt.a, tt.b))
			assert.False(s.T(), CanMatch(tt.b, tt.a))
		})
	}
}

func (s *MatcherTestSuite) TestCanMatchVariations() {
	tests := []struct {
		name string
		a, b string
	}{
		{"FlourVsAllPurpose", "flour", "all-purpose flour"},
		{"SugarVsGranulated", "sugar", "granulated sugar"},
		{"GroundBeefVsHamburger", "ground beef", "hamburger"},
		{"EggsVsLargeEggs", "eggs", "large eggs"},
		{"BreadVsSourdough", "bread", "sourdough bread"},
		{"OnionVsYellowOnion", "onion", "yellow onion"},
		{"WaterVsFilteredWater", "water", "filtered water"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			assert.True(s.T(), CanMatch(tt.a, tt.b))
			assert.True(s.T(), CanMatch(tt.b, tt.a))
		})
	}
}

// Known sharp edge: cross-match rules compare by substring containment, so a
// blocked term like "steak" suppresses pairs the variation table would
// otherwise allow. Kept for compatibility with the established behavior.
func (s *MatcherTestSuite) TestCanMatchSubstringSuppressionEdge() {
	s.Run("CubeSteaksVsMinuteSteaks", func() {
		assert.False(s.T(), CanMatch("cube steaks", "minute steaks"))
	})

	s.Run("PorkShoulderVsBostonButt", func() {
		assert.False(s.T(), CanMatch("pork shoulder", "boston butt"))
	})

	s.Run("ExactFormStillMatches", func() {
		assert.True(s.T(), CanMatch("cube steaks", "cube steaks"))
	})
}

func (s *MatcherTestSuite) TestCanMatchSymmetry() {
	pairs := [][2]string{
		{"flour", "all purpose flour"},
		{"almond flour", "flour"},
		{"peanut butter", "butter"},
		{"milk", "whole milk"},
		{"cube steaks", "ground beef"},
		{"garlic", "minced garlic"},
		{"bread", "sourdough bread"},
		{"tomato paste", "tomatoes"},
		{"", "flour"},
	}

	for _, pair := range pairs {
		assert.Equal(s.T(), CanMatch(pair[0], pair[1]), CanMatch(pair[1], pair[0]),
			"CanMatch(%q,%q) must be symmetric", pair[0], pair[1])
	}
}

func (s *MatcherTestSuite) TestCanMatchReflexivity() {
	names := []string{"flour", "almond flour", "2 cups sugar", "Ground Beef", "tomato paste"}
	for _, name := range names {
		assert.True(s.T(), CanMatch(name, name), "CanMatch(%q,%q)", name, name)
	}
}

func (s *MatcherTestSuite) TestVariations() {
	s.Run("StapleExpandsToAliases", func() {
		got := Variations("flour")
		assert.Contains(s.T(), got, "all purpose flour")
		assert.Contains(s.T(), got, "plain flour")
		assert.Contains(s.T(), got, "flour")
	})

	s.Run("AliasExpandsBackToBase", func() {
		got := Variations("granulated sugar")
		assert.Contains(s.T(), got, "sugar")
	})

	s.Run("SpecialtyIsSelfOnly", func() {
		got := Variations("almond flour")
		assert.Len(s.T(), got, 1)
		assert.Contains(s.T(), got, "almond flour")
	})
}

func (s *MatcherTestSuite) TestBestMatch() {
	s.Run("ExactMatchBeatsHigherQuantityFuzzy", func() {
		inventory := []InventoryItem{
			{Name: "milk", Quantity: 1},
			{Name: "whole milk", Quantity: 5},
		}

		got := BestMatch("milk", inventory)

		require.NotNil(s.T(), got)
		assert.Equal(s.T(), "milk", got.Name)
		assert.Equal(s.T(), 1.0, got.Quantity)
	})

	s.Run("HighestQuantityWinsAmongFuzzy", func() {
		inventory := []InventoryItem{
			{Name: "granulated sugar", Quantity: 2},
			{Name: "white sugar", Quantity: 7},
			{Name: "cane sugar", Quantity: 3},
		}

		got := BestMatch("sugar", inventory)

		require.NotNil(s.T(), got)
		assert.Equal(s.T(), "white sugar", got.Name)
	})

	s.Run("FirstMaxWinsOnQuantityTie", func() {
		inventory := []InventoryItem{
			{Name: "granulated sugar", Quantity: 4},
			{Name: "white sugar", Quantity: 4},
		}

		got := BestMatch("sugar", inventory)

		require.NotNil(s.T(), got)
		assert.Equal(s.T(), "granulated sugar", got.Name)
	})

	s.Run("RecipeLineWithMeasurements", func() {
		inventory := []InventoryItem{
			{Name: "all purpose flour", Quantity: 1},
		}

		got := BestMatch("2 cups all-purpose flour, sifted", inventory)

		require.NotNil(s.T(), got)
		assert.Equal(s.T(), "all purpose flour", got.Name)
	})

	s.Run("NoCandidateReturnsNil", func() {
		inventory := []InventoryItem{
			{Name: "olive oil", Quantity: 1},
		}

		assert.Nil(s.T(), BestMatch("flour", inventory))
	})

	s.Run("EmptyInventoryReturnsNil", func() {
		assert.Nil(s.T(), BestMatch("flour", nil))
	})
}

func (s *MatcherTestSuite) TestKey() {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"CubeSteakVariant", "4 cube steaks (pounded thin)", "cube-steaks"},
		{"MinuteSteaks", "minute steaks", "cube-steaks"},
		{"GroundBeef", "1 lb ground beef", "ground-beef"},
		{"Hamburger", "hamburger", "ground-beef"},
		{"ChickenBreast", "boneless chicken breast", "chicken-breast"},
		{"GroundChicken", "ground chicken", "ground-chicken"},
		{"FallbackSlug", "olive oil", "olive-oil"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			assert.Equal(s.T(), tt.expected, Key(tt.input))
		})
	}
}

func (s *MatcherTestSuite) TestSubstitutions() {
	s.Run("DirectEntry", func() {
		got := Substitutions("garlic cloves")

		require.NotNil(s.T(), got)
		assert.Contains(s.T(), got.CanSubstituteWith, "minced garlic")
		assert.NotEmpty(s.T(), got.ConversionNote)
	})

	s.Run("ReverseEntryPointsBackAtBase", func() {
		got := Substitutions("canola oil")

		require.NotNil(s.T(), got)
		assert.Contains(s.T(), got.CanSubstituteWith, "vegetable oil")
	})

	s.Run("UnknownIngredient", func() {
		assert.Nil(s.T(), Substitutions("dragon fruit"))
	})

	// Substitution hints are advisory data and do not feed match decisions.
	s.Run("HintsDoNotAffectCanMatch", func() {
		assert.True(s.T(), CanSubstitute("vegetable oil", "canola oil"))
		assert.False(s.T(), CanMatch("vegetable oil", "canola oil"))
	})
}

func TestMatcherTestSuite(t *testing.T) {
	suite.Run(t, new(MatcherTestSuite))
}

func BenchmarkCanMatch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CanMatch("2 cups all-purpose flour", "flour")
	}
}

func BenchmarkBestMatch(b *testing.B) {
	inventory := []InventoryItem{
		{Name: "olive oil", Quantity: 1},
		{Name: "granulated sugar", Quantity: 2},
		{Name: "whole milk", Quantity: 3},
		{Name: "all purpose flour", Quantity: 4},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BestMatch("flour", inventory)
	}
}
