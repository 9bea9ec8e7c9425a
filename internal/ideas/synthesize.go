package ideas

import "strings"

// fallbackKeyword is used when neither keywords nor a destination name are
// available for the title.
const fallbackKeyword = "local"

// destinationSuffixChance is the probability of appending " in <destination>".
const destinationSuffixChance = 0.3

// GenerateTitle fills a random title template of category c with a random
// keyword and a random type phrase. Unknown categories use the CULTURE
// templates and the generic phrase list. With no keywords the lowercased
// destination name stands in for the keyword.
func (g *Generator) GenerateTitle(c Category, keywords []string, destination string) string {
	templates, ok := titleTemplates[c]
	if !ok {
		templates = titleTemplates[CategoryCulture]
	}
	phrases, ok := typePhrases[c]
	if !ok {
		phrases = genericTypePhrases
	}

	title := strings.NewReplacer(
		"{keyword}", titleKeyword(g.src, keywords, destination),
		"{type}", pick(g.src, phrases),
	).Replace(pick(g.src, templates))

	destination = strings.TrimSpace(destination)
	if destination != "" && g.src.Float64() < destinationSuffixChance {
		title += " in " + destination
	}
	return title
}

// GenerateDescription fills a random description template of category c.
func (g *Generator) GenerateDescription(c Category, destination string) string {
	templates, ok := descriptionTemplates[c]
	if !ok {
		templates = descriptionTemplates[CategoryCulture]
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		destination = "the area"
	}
	return strings.ReplaceAll(pick(g.src, templates), "{destination}", destination)
}

func titleKeyword(src Source, keywords []string, destination string) string {
	usable := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			usable = append(usable, kw)
		}
	}
	if len(usable) > 0 {
		return pick(src, usable)
	}
	if d := strings.ToLower(strings.TrimSpace(destination)); d != "" {
		return d
	}
	return fallbackKeyword
}
