package utils

import (
	"regexp"
	"strings"

	"github.com/xlab/treeprint"
)

// Domain stopwords stripped before fuzzy matching so that "show me details
// of ATH2" reduces to the tokens actually worth searching for.
var stopwords = map[string]struct{}{
	"site": {}, "sites": {}, "task": {}, "tasks": {}, "show": {}, "me": {},
	"details": {}, "of": {}, "the": {}, "and": {}, "please": {}, "give": {},
	"info": {}, "information": {}, "about": {}, "list": {}, "all": {},
	"get": {}, "my": {}, "a": {}, "an": {}, "for": {}, "do": {}, "we": {},
	"have": {}, "is": {}, "are": {}, "what": {}, "which": {},
}

var wordRe = regexp.MustCompile(`\w+`)

// Tokenize splits text into lowercase word tokens.
func Tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// Keywords returns the lowercase tokens of text with domain stopwords
// removed, in original order.
func Keywords(text string) []string {
	tokens := Tokenize(text)
	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		keywords = append(keywords, tok)
	}
	return keywords
}

// ContainsAnyWord reports whether any of words appears as a whole token.
func ContainsAnyWord(text string, words ...string) bool {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	for _, w := range words {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}

type TreeEntry struct {
	Label    string
	Children []string
}

// BuildSiteTree renders the site -> task hierarchy for prompt context.
// Entries must come pre-ordered; the tree preserves the given order.
func BuildSiteTree(root string, entries []TreeEntry) string {
	tree := treeprint.New()
	tree.SetValue(root)
	for _, entry := range entries {
		branch := tree.AddBranch(entry.Label)
		for _, leaf := range entry.Children {
			branch.AddNode(leaf)
		}
	}
	return tree.String()
}
