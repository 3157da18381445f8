package rules

import (
	"regexp"
	"strconv"
)

// measure is one numeric token pulled out of source text.
type measure struct {
	raw   string
	value float64
}

func has(p *regexp.Regexp, content string) bool {
	return p.MatchString(content)
}

func count(p *regexp.Regexp, content string) int {
	return len(p.FindAllStringIndex(content, -1))
}

// measures returns the first capture group of every match of p parsed as a
// number. Tokens that do not parse (e.g. a lone ".") are dropped.
func measures(p *regexp.Regexp, content string) []measure {
	var out []measure
	for _, m := range p.FindAllStringSubmatch(content, -1) {
		if len(m) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		out = append(out, measure{raw: m[1], value: v})
	}
	return out
}

// captures returns the first capture group of every match of p.
func captures(p *regexp.Regexp, content string) []string {
	var out []string
	for _, m := range p.FindAllStringSubmatch(content, -1) {
		if len(m) < 2 {
			continue
		}
		out = append(out, m[1])
	}
	return out
}
