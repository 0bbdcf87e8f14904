// Package lexicon holds the static vocabulary and pattern tables consulted
// by the content classifier. A Lexicon is built once, is immutable
// afterwards, and is safe for concurrent readers.
package lexicon

import (
	"strings"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// category identifies one vocabulary table inside the shared automaton.
type category int

const (
	catProtein category = iota
	catVegetable
	catFruit
	catGrain
	catDairy
	catHerbSpice
	catPantry
	catDessert
	catNutLegume
	catPrepared
	catDishName
	catCookingBasic
	catCookingIntermediate
	catCookingAdvanced
	catDescriptor
	catDishType
	catPreparation
	catRegional
	catComponent
	catFragment
	catPreposition
)

// foodCategories are the tables that count as food vocabulary.
var foodCategories = []category{
	catProtein, catVegetable, catFruit, catGrain, catDairy, catHerbSpice,
	catPantry, catDessert, catNutLegume, catPrepared, catDishName,
}

// cookingCategories are the tables that count as cooking-method vocabulary.
var cookingCategories = []category{
	catCookingBasic, catCookingIntermediate, catCookingAdvanced,
}

// Lexicon is the read-only vocabulary store. All word containment checks
// run through a single Aho-Corasick automaton; keywords are padded with
// spaces so matches land on word boundaries only.
type Lexicon struct {
	matcher      *ahocorasick.Matcher
	keywords     []string             // padded keywords, automaton order
	kwCategories map[string][]category // padded keyword -> categories

	iconicDishes  map[string]struct{}
	sectionLabels map[string]struct{}
	frontMatter   []string
	educational   []string
	artifacts     map[string]struct{}
}

// New builds the default Lexicon. Tests inject smaller fixtures by
// constructing their own slices through NewFromTables.
func New() *Lexicon {
	return NewFromTables(defaultTables())
}

// Tables is the raw vocabulary a Lexicon is built from.
type Tables struct {
	Words         map[string][]string // category name -> words
	IconicDishes  []string
	SectionLabels []string
	FrontMatter   []string
	Educational   []string
	Artifacts     []string
}

// categoryNames maps the table keys accepted in Tables.Words.
var categoryNames = map[string]category{
	"proteins":             catProtein,
	"vegetables":           catVegetable,
	"fruits":               catFruit,
	"grains":               catGrain,
	"dairy":                catDairy,
	"herbs_spices":         catHerbSpice,
	"pantry":               catPantry,
	"desserts":             catDessert,
	"nuts_legumes":         catNutLegume,
	"prepared":             catPrepared,
	"dish_names":           catDishName,
	"cooking_basic":        catCookingBasic,
	"cooking_intermediate": catCookingIntermediate,
	"cooking_advanced":     catCookingAdvanced,
	"descriptors":          catDescriptor,
	"dish_types":           catDishType,
	"preparations":         catPreparation,
	"regional_styles":      catRegional,
	"dish_components":      catComponent,
	"fragment_indicators":  catFragment,
	"prepositions":         catPreposition,
}

func defaultTables() Tables {
	return Tables{
		Words: map[string][]string{
			"proteins":             proteinWords,
			"vegetables":           vegetableWords,
			"fruits":               fruitWords,
			"grains":               grainWords,
			"dairy":                dairyWords,
			"herbs_spices":         herbSpiceWords,
			"pantry":               pantryWords,
			"desserts":             dessertWords,
			"nuts_legumes":         nutLegumeWords,
			"prepared":             preparedWords,
			"dish_names":           dishNameWords,
			"cooking_basic":        basicCookingWords,
			"cooking_intermediate": intermediateCookingWords,
			"cooking_advanced":     advancedCookingWords,
			"descriptors":          descriptorWords,
			"dish_types":           dishTypeWords,
			"preparations":         preparationWords,
			"regional_styles":      regionalStyleWords,
			"dish_components":      dishComponentWords,
			"fragment_indicators":  fragmentIndicatorWords,
			"prepositions":         titlePrepositionWords,
		},
		IconicDishes:  iconicDishWords,
		SectionLabels: sectionLabelPhrases,
		FrontMatter:   frontMatterPhrases,
		Educational:   educationalPhrases,
		Artifacts:     artifactPhrases,
	}
}

// NewFromTables builds a Lexicon from explicit vocabulary tables.
func NewFromTables(t Tables) *Lexicon {
	l := &Lexicon{
		kwCategories:  make(map[string][]category),
		iconicDishes:  phraseSet(t.IconicDishes),
		sectionLabels: phraseSet(t.SectionLabels),
		frontMatter:   normalizePhrases(t.FrontMatter),
		educational:   normalizePhrases(t.Educational),
		artifacts:     phraseSet(t.Artifacts),
	}

	for name, words := range t.Words {
		cat, ok := categoryNames[name]
		if !ok {
			continue
		}
		for _, w := range words {
			padded := " " + normalizePhrase(w) + " "
			if padded == "  " {
				continue
			}
			cats := l.kwCategories[padded]
			if len(cats) == 0 {
				l.keywords = append(l.keywords, padded)
			}
			l.kwCategories[padded] = append(cats, cat)
		}
	}

	if len(l.keywords) > 0 {
		l.matcher = ahocorasick.NewStringMatcher(l.keywords)
	}
	return l
}

// Hits is the result of scanning one text span against the automaton.
type Hits struct {
	words map[category]map[string]struct{}
}

// Scan matches text against every vocabulary table in one automaton pass.
func (l *Lexicon) Scan(text string) Hits {
	h := Hits{words: make(map[category]map[string]struct{})}
	if l.matcher == nil {
		return h
	}

	padded := " " + normalizePhrase(text) + " "
	for _, idx := range l.matcher.Match([]byte(padded)) {
		if idx >= len(l.keywords) {
			continue
		}
		kw := strings.TrimSpace(l.keywords[idx])
		for _, cat := range l.kwCategories[l.keywords[idx]] {
			if h.words[cat] == nil {
				h.words[cat] = make(map[string]struct{})
			}
			h.words[cat][kw] = struct{}{}
		}
	}
	return h
}

func (h Hits) has(cats ...category) bool {
	for _, c := range cats {
		if len(h.words[c]) > 0 {
			return true
		}
	}
	return false
}

// HasFood reports whether any food vocabulary matched.
func (h Hits) HasFood() bool { return h.has(foodCategories...) }

// HasCooking reports whether any cooking-method verb matched.
func (h Hits) HasCooking() bool { return h.has(cookingCategories...) }

// HasProtein reports a protein or legume match.
func (h Hits) HasProtein() bool { return h.has(catProtein, catNutLegume) }

// HasDescriptor reports a descriptor adjective match.
func (h Hits) HasDescriptor() bool { return h.has(catDescriptor) }

// HasDishType reports a dish-type noun match.
func (h Hits) HasDishType() bool { return h.has(catDishType, catDishName) }

// HasPreparation reports a preparation participle match ("grilled").
func (h Hits) HasPreparation() bool { return h.has(catPreparation) }

// HasRegionalStyle reports a regional/style adjective match.
func (h Hits) HasRegionalStyle() bool { return h.has(catRegional) }

// HasDishComponent reports a component noun match (sauce, topping...).
func (h Hits) HasDishComponent() bool { return h.has(catComponent) }

// HasFragmentIndicator reports an instruction-fragment word match.
func (h Hits) HasFragmentIndicator() bool { return h.has(catFragment) }

// HasPreposition reports a dish-name preposition match.
func (h Hits) HasPreposition() bool { return h.has(catPreposition) }

// FoodWordCount returns the number of distinct food words matched.
func (h Hits) FoodWordCount() int {
	seen := make(map[string]struct{})
	for _, c := range foodCategories {
		for w := range h.words[c] {
			seen[w] = struct{}{}
		}
	}
	return len(seen)
}

// StructuralCategoryCount returns how many of the five title-structure
// categories (method, descriptor, protein, dish type, preparation) matched.
func (h Hits) StructuralCategoryCount() int {
	count := 0
	if h.has(cookingCategories...) {
		count++
	}
	if h.HasDescriptor() {
		count++
	}
	if h.HasProtein() {
		count++
	}
	if h.HasDishType() {
		count++
	}
	if h.HasPreparation() {
		count++
	}
	return count
}

// ContainsFoodWord reports whether text contains any food vocabulary.
func (l *Lexicon) ContainsFoodWord(text string) bool {
	return l.Scan(text).HasFood()
}

// ContainsCookingWord reports whether text contains any cooking verb.
func (l *Lexicon) ContainsCookingWord(text string) bool {
	return l.Scan(text).HasCooking()
}

// IsIconicDish reports whether word alone names a complete dish.
func (l *Lexicon) IsIconicDish(word string) bool {
	_, ok := l.iconicDishes[normalizePhrase(word)]
	return ok
}

// IsSectionLabel reports whether text is exactly a known section label.
func (l *Lexicon) IsSectionLabel(text string) bool {
	_, ok := l.sectionLabels[normalizePhrase(text)]
	return ok
}

// IsArtifactPhrase reports whether text is exactly a known orphaned header.
func (l *Lexicon) IsArtifactPhrase(text string) bool {
	_, ok := l.artifacts[normalizePhrase(text)]
	return ok
}

// ContainsFrontMatterPhrase reports whether text is book front matter.
// Multi-word phrases match anywhere in the span; single words only match
// the whole span, so "pour contents of the can" is not front matter.
func (l *Lexicon) ContainsFrontMatterPhrase(text string) bool {
	norm := normalizePhrase(text)
	for _, phrase := range l.frontMatter {
		if strings.Contains(phrase, " ") {
			if containsPhrase(norm, phrase) {
				return true
			}
		} else if norm == phrase {
			return true
		}
	}
	return false
}

// ContainsEducationalPhrase reports whether text carries a known
// narrative-aside marker.
func (l *Lexicon) ContainsEducationalPhrase(text string) bool {
	norm := normalizePhrase(text)
	for _, phrase := range l.educational {
		if containsPhrase(norm, phrase) {
			return true
		}
	}
	return false
}

// ContainsBrokenWord detects OCR-introduced mid-word splits like "br ead":
// a stray 1-2 letter lowercase token that is not a real short word,
// followed by another lowercase run.
func (l *Lexicon) ContainsBrokenWord(text string) bool {
	fields := strings.Fields(text)
	for i := 0; i+1 < len(fields); i++ {
		first := fields[i]
		next := fields[i+1]
		if len(first) > 2 || !isLowerAlpha(first) {
			continue
		}
		if _, ok := shortWordAllowlist[first]; ok {
			continue
		}
		if len(next) >= 2 && isLowerAlpha(next) {
			return true
		}
	}
	return false
}

func isLowerAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return len(s) > 0
}

func containsPhrase(norm, phrase string) bool {
	return strings.Contains(" "+norm+" ", " "+phrase+" ")
}

// normalizePhrase lowercases, strips non-alphanumeric runes and collapses
// whitespace, the same normalization applied to automaton keywords.
func normalizePhrase(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func phraseSet(phrases []string) map[string]struct{} {
	set := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		set[normalizePhrase(p)] = struct{}{}
	}
	return set
}

func normalizePhrases(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, normalizePhrase(p))
	}
	return out
}
