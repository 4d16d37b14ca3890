// Package ingredient contains the core domain logic for reconciling free-text
// ingredient names: recipe lines against pantry inventory, receipt line items
// against known purchasables. Every operation is a pure function over the
// static rule tables; malformed input degrades to "no match", never an error.
package ingredient

import (
	"regexp"
	"strings"
)

// Normalization strips descriptive noise that never changes which purchasable
// good a name refers to. Patterns are applied in declaration order.
var normalizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\([^)]*\)`),
	regexp.MustCompile(`\b(organic|natural|pure|fresh|raw|whole|fine|coarse|ground)\b`),
	regexp.MustCompile(`\b(small|medium|large|extra large|jumbo|mini|thick|thin)\b`),
	regexp.MustCompile(`\b(bone-in|boneless|skin-on|skinless|lean|extra lean)\b`),
	regexp.MustCompile(`\b(can|jar|bottle|bag|box|package|container)\b`),
	regexp.MustCompile(`\b(pounded|flattened|tenderized|cut|sliced|diced|chopped|minced|crushed|grated|shredded)\b`),
	regexp.MustCompile(`\b(inch|inches|thickness|diameter|about|approximately|each|per|piece|pieces)\b`),
	regexp.MustCompile(`\b(to|into|for|with|from|of|the|and|or|a|an)\b`),
	regexp.MustCompile(`\d+\s*[½¼¾]`),
	regexp.MustCompile(`[½¼¾]`),
	regexp.MustCompile(`\d*\.\d+`),
	regexp.MustCompile(`\b\d+/\d+\b`),
	regexp.MustCompile(`\b\d+\b`),
}

// Extraction additionally strips quantities, units and preparation
// instructions from a full recipe line before the noun phrase remains.
var extractPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*[½¼¾]`),
	regexp.MustCompile(`[½¼¾]`),
	regexp.MustCompile(`\d*\.\d+`),
	regexp.MustCompile(`\b\d+/\d+\b`),
	regexp.MustCompile(`\b\d+\b`),
	regexp.MustCompile(`(?i)\b(cups?|tbsp|tsp|tablespoons?|teaspoons?|lbs?|pounds?|oz|ounces?|ml|liters?|l|grams?|g|kg|kilograms?|pt\.?|pints?|qt|quarts?|gal|gallons?|fl\.?\s*oz|fluid\s*ounces?)\b`),
	regexp.MustCompile(`(?i)\b(beaten|melted|softened|minced|chopped|sliced|diced|crushed|grated|shredded|packed|cold|hot|warm|uncooked|cooked|finely)\b`),
	regexp.MustCompile(`(?i)\b(pounded|flattened|tenderized|marinated|seasoned|trimmed|cut|split|halved|quartered)\b`),
	regexp.MustCompile(`(?i)\b(thick|thin|medium|large|small|extra|jumbo|mini)\b`),
	regexp.MustCompile(`(?i)\b(bone-in|boneless|skin-on|skinless|lean|extra lean|fat free|low fat)\b`),
	regexp.MustCompile(`(?i)\b(inch|inches|thickness|diameter|width|length)\b`),
	regexp.MustCompile(`(?i)\b(about|approximately|roughly|around)\b`),
	regexp.MustCompile(`(?i)\b(each|per|piece|pieces)\b`),
	regexp.MustCompile(`(?i)\b(to taste|optional|dash|pinch)\b`),
	regexp.MustCompile(`(?i)\b(to|into|for|with|from|of|the|and|or|a|an)\b`),
}

var (
	parenthetical = regexp.MustCompile(`\([^)]*\)`)
	leadingCount  = regexp.MustCompile(`^\d+\s+`)
	punctuation   = regexp.MustCompile(`[^\w\s]`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes an ingredient name for comparison: lower-case,
// trimmed, with parentheticals, descriptive adjectives, size words, packaging
// nouns, numbers and punctuation removed. Empty input normalizes to "".
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	normalized := strings.TrimSpace(strings.ToLower(name))
	for _, p := range normalizePatterns {
		normalized = p.ReplaceAllString(normalized, "")
	}

	normalized = punctuation.ReplaceAllString(normalized, " ")
	normalized = whitespace.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// ExtractName pulls the ingredient noun phrase out of a full recipe line such
// as "2 cups all-purpose flour, sifted", stripping counts, fractions, units
// and preparation words.
func ExtractName(line string) string {
	if line == "" {
		return ""
	}

	cleaned := parenthetical.ReplaceAllString(line, "")

	// Everything after the first comma is preparation instructions.
	if idx := strings.Index(cleaned, ","); idx >= 0 {
		cleaned = cleaned[:idx]
	}

	cleaned = leadingCount.ReplaceAllString(cleaned, "")
	for _, p := range extractPatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}

	cleaned = punctuation.ReplaceAllString(cleaned, " ")
	cleaned = whitespace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// IsSpecialty reports whether the name is (or contains) a specialty
// ingredient that must never fuzzy-match anything but itself.
func IsSpecialty(name string) bool {
	normalized := Normalize(name)
	if normalized == "" {
		return false
	}
	for _, specialty := range neverMatch {
		specialtyNorm := Normalize(specialty)
		if normalized == specialtyNorm || strings.Contains(normalized, specialtyNorm) {
			return true
		}
	}
	return false
}

// CanMatch decides whether two free-text ingredient names denote the same
// purchasable good. Exact post-normalization equality always wins; specialty
// ingredients and explicit cross-match rules block everything else; otherwise
// the variation sets of both names are intersected.
func CanMatch(a, b string) bool {
	aNorm := Normalize(a)
	bNorm := Normalize(b)

	if aNorm == bNorm {
		return true
	}

	if IsSpecialty(a) || IsSpecialty(b) {
		return false
	}

	if crossMatchBlocked(aNorm, bNorm) || crossMatchBlocked(bNorm, aNorm) {
		return false
	}

	bVariations := variationSet(b)
	for v := range variationSet(a) {
		if _, ok := bVariations[v]; ok {
			return true
		}
	}
	return false
}

// crossMatchBlocked checks the suppression table in one direction: name
// matches a rule entry (by substring) whose blocked list contains other.
func crossMatchBlocked(name, other string) bool {
	for _, rule := range neverCrossMatch {
		ruleNorm := Normalize(rule.name)
		if name != ruleNorm && !strings.Contains(name, ruleNorm) {
			continue
		}
		for _, blocked := range rule.blocked {
			blockedNorm := Normalize(blocked)
			if other == blockedNorm || strings.Contains(other, blockedNorm) {
				return true
			}
		}
	}
	return false
}

// Variations returns every surface form considered equivalent to the given
// name. Specialty ingredients get a strict self-only set.
func Variations(name string) []string {
	set := variationSet(name)
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}

func variationSet(name string) map[string]struct{} {
	cleaned := ExtractName(name)
	normalized := Normalize(cleaned)

	set := make(map[string]struct{})
	if IsSpecialty(name) {
		set[normalized] = struct{}{}
		set[strings.TrimSpace(strings.ToLower(name))] = struct{}{}
		return set
	}

	set[normalized] = struct{}{}
	set[strings.TrimSpace(strings.ToLower(name))] = struct{}{}
	set[strings.TrimSpace(strings.ToLower(cleaned))] = struct{}{}

	for _, entry := range variations {
		if entry.base == normalized {
			for _, alias := range entry.aliases {
				set[Normalize(alias)] = struct{}{}
			}
		}
	}

	// Reverse direction: the name may itself be a listed alias of some base.
	// The first matching entry wins, mirroring the table's declaration order.
	for _, entry := range variations {
		found := false
		for _, alias := range entry.aliases {
			if Normalize(alias) == normalized {
				found = true
				break
			}
		}
		if found {
			set[entry.base] = struct{}{}
			for _, alias := range entry.aliases {
				set[Normalize(alias)] = struct{}{}
			}
			break
		}
	}

	return set
}

// InventoryItem is the caller-supplied view of an on-hand pantry item. The
// matcher never mutates it.
type InventoryItem struct {
	Name     string
	Quantity float64
}

// BestMatch selects the inventory item that best satisfies a recipe
// ingredient: an exact post-normalization match wins outright (first in input
// order), otherwise the compatible item with the highest quantity. Returns
// nil when nothing matches.
func BestMatch(recipeIngredient string, inventory []InventoryItem) *InventoryItem {
	cleaned := ExtractName(recipeIngredient)
	recipeNorm := Normalize(cleaned)

	for i := range inventory {
		itemNorm := Normalize(ExtractName(inventory[i].Name))
		if itemNorm == recipeNorm {
			return &inventory[i]
		}
	}

	var best *InventoryItem
	for i := range inventory {
		if !CanMatch(cleaned, inventory[i].Name) {
			continue
		}
		if best == nil || inventory[i].Quantity > best.Quantity {
			best = &inventory[i]
		}
	}
	return best
}

// Key produces a canonical slug for grouping equivalent purchasables, with
// priority buckets for cuts that show up under many surface forms.
func Key(name string) string {
	cleaned := strings.TrimSpace(strings.ToLower(ExtractName(name)))

	cubeForms := []string{
		"cube steaks", "cubed steaks", "cube steak", "cubed steak",
		"minute steaks", "minute steak", "swiss steaks", "swiss steak",
	}
	for _, form := range cubeForms {
		if strings.Contains(cleaned, form) {
			return "cube-steaks"
		}
	}

	switch {
	case strings.Contains(cleaned, "ground beef"), strings.Contains(cleaned, "lean beef"),
		strings.Contains(cleaned, "hamburger"), strings.Contains(cleaned, "ground chuck"):
		return "ground-beef"
	case strings.Contains(cleaned, "chicken breast") && !strings.Contains(cleaned, "ground"):
		return "chicken-breast"
	case strings.Contains(cleaned, "ground chicken"):
		return "ground-chicken"
	case strings.Contains(cleaned, "pork chops"):
		return "pork-chops"
	case strings.Contains(cleaned, "italian sausage"):
		return "italian-sausage"
	}

	return strings.ReplaceAll(cleaned, " ", "-")
}

// Substitutions returns the advisory substitution hints for an ingredient, or
// nil when none are known. When the ingredient appears only inside another
// entry's substitute list, a derived hint pointing back at that base is
// returned.
func Substitutions(name string) *Substitution {
	cleaned := ExtractName(name)
	normalized := Normalize(cleaned)

	for _, entry := range substitutions {
		if entry.base == normalized {
			sub := entry.sub
			return &sub
		}
	}

	for _, entry := range substitutions {
		for _, candidate := range entry.sub.CanSubstituteWith {
			if Normalize(candidate) != normalized {
				continue
			}
			derived := Substitution{
				CanSubstituteWith: []string{entry.base},
				ConversionNote:    "Can substitute for " + entry.base + ". " + entry.sub.ConversionNote,
			}
			for _, other := range entry.sub.CanSubstituteWith {
				if Normalize(other) != normalized {
					derived.CanSubstituteWith = append(derived.CanSubstituteWith, other)
				}
			}
			return &derived
		}
	}

	return nil
}

// CanSubstitute reports whether either ingredient appears in the other's
// substitution hints. Advisory only; CanMatch does not consult this.
func CanSubstitute(a, b string) bool {
	aNorm := Normalize(ExtractName(a))
	bNorm := Normalize(ExtractName(b))

	if subs := Substitutions(a); subs != nil {
		for _, candidate := range subs.CanSubstituteWith {
			if Normalize(candidate) == bNorm {
				return true
			}
		}
	}
	if subs := Substitutions(b); subs != nil {
		for _, candidate := range subs.CanSubstituteWith {
			if Normalize(candidate) == aNorm {
				return true
			}
		}
	}
	return false
}
