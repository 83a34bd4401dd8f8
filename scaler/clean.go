package scaler

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// cleanupStep is one pure rewrite of an ingredient line.
type cleanupStep struct {
	name string
	fn   func(string) string
}

// cleanupSteps run in order. Each step takes and returns the whole line.
var cleanupSteps = []cleanupStep{
	{"vulgar-fractions", normalizeVulgarFractions},
	{"trim", strings.TrimSpace},
	{"double-parens", collapseDoubleParens},
	{"empty-parens", dropEmptyParens},
	{"duplicate-notes", dropDuplicateNotes},
	{"punctuation", tidyPunctuation},
	{"substitutions", applySubstitutions},
	{"final-trim", strings.TrimSpace},
}

// Clean removes cosmetic noise from a raw ingredient line without changing
// what it says. It always returns a string, empty only for blank input.
func Clean(line string) string {
	for _, step := range cleanupSteps {
		line = step.fn(line)
	}
	return line
}

var vulgarFractions = map[rune]string{
	'½': "1/2",
	'⅓': "1/3",
	'⅔': "2/3",
	'¼': "1/4",
	'¾': "3/4",
	'⅕': "1/5",
	'⅖': "2/5",
	'⅗': "3/5",
	'⅘': "4/5",
	'⅙': "1/6",
	'⅚': "5/6",
	'⅛': "1/8",
	'⅜': "3/8",
	'⅝': "5/8",
	'⅞': "7/8",
	'⁄': "/",
}

// normalizeVulgarFractions spells single-glyph fractions out in ASCII. A digit
// directly before the glyph gets a space so "1½" reads as "1 1/2".
func normalizeVulgarFractions(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { _, ok := vulgarFractions[r]; return ok }) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	var prev rune
	for _, r := range s {
		text, ok := vulgarFractions[r]
		if !ok {
			b.WriteRune(r)
			prev = r
			continue
		}
		if r != '⁄' && prev >= '0' && prev <= '9' {
			b.WriteByte(' ')
		}
		b.WriteString(text)
		prev = r
	}
	return b.String()
}

var (
	doubleParensPattern  = regexp.MustCompile(`\(\(([^)]+)\)\)`)
	emptyParensPattern   = regexp.MustCompile(`\(\s*\)`)
	parentheticalPattern = regexp.MustCompile(`\s*\(\s*([^)]*)\s*\)`)
	doubleCommaPattern   = regexp.MustCompile(`\s*,\s*,`)
	trailingCommaPattern = regexp.MustCompile(`,\s*$`)
	spaceRunPattern      = regexp.MustCompile(`[\s\p{Zs}]+`)
)

func collapseDoubleParens(s string) string {
	return doubleParensPattern.ReplaceAllString(s, "(${1})")
}

func dropEmptyParens(s string) string {
	return emptyParensPattern.ReplaceAllString(s, "")
}

// dropDuplicateNotes removes a parenthetical when the rest of the line already
// says the same thing, or when the note mentions the first word of the line.
// The second test is loose: a note like "see note 1" on a line starting with
// "1" is dropped too.
func dropDuplicateNotes(s string) string {
	return parentheticalPattern.ReplaceAllStringFunc(s, func(match string) string {
		content := strings.TrimSpace(parentheticalPattern.FindStringSubmatch(match)[1])
		main := fold(strings.TrimSpace(strings.Replace(s, match, "", 1)))
		note := fold(content)

		firstWord, _, _ := strings.Cut(main, " ")
		if strings.Contains(main, note) || strings.Contains(note, firstWord) {
			return ""
		}
		return " (" + content + ")"
	})
}

func tidyPunctuation(s string) string {
	s = doubleCommaPattern.ReplaceAllString(s, ",")
	s = trailingCommaPattern.ReplaceAllString(s, "")
	return spaceRunPattern.ReplaceAllString(s, " ")
}

var (
	artificialFlavourPattern = regexp.MustCompile(`\s*,\s*real not artificially flavoured`)
	kosherSaltPattern        = regexp.MustCompile(`\s*/\s*kosher salt`)
)

// applySubstitutions rewrites a few known messy phrasings. The exact
// "cooking salt / kosher salt" form goes first; otherwise the looser kosher
// salt rewrite would consume it.
func applySubstitutions(s string) string {
	s = strings.Replace(s, "cooking salt / kosher salt", "salt", 1)
	s = artificialFlavourPattern.ReplaceAllString(s, "")
	if loc := kosherSaltPattern.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + " or kosher salt" + s[loc[1]:]
	}
	return s
}

// fold case-folds s for comparison. A Caser keeps state, so each call gets
// its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
