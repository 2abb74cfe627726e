package htmlwriter

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Components Index</title>
    <link href="{{.Assets.BootstrapCSS}}" rel="stylesheet">
</head>
<body>

<div class="container my-4">
    <h2 class="text-center">Components Index</h2>
    <ul class="list-group">
{{.Links}}
    </ul>
</div>

</body>
</html>
`))

// indexData feeds indexTemplate.
type indexData struct {
	Assets Assets
	Links  string
}

var titleCaser = cases.Title(language.English)

// PageTitle turns a group (subdirectory) name into a human-readable title:
// underscores become spaces and each word is capitalized.
func PageTitle(group string) string {
	return titleCaser.String(strings.ReplaceAll(group, "_", " "))
}

// IndexPage renders the landing page with one link per component group,
// in the order the groups were processed.
func (r *Renderer) IndexPage(groups []string) (string, error) {
	links := make([]string, 0, len(groups))
	for _, group := range groups {
		links = append(links, fmt.Sprintf(
			"        <li class=\"list-group-item\"><a href=\"%s.html\">%s</a></li>",
			group, PageTitle(group)))
	}

	var buf strings.Builder
	err := indexTemplate.Execute(&buf, indexData{
		Assets: r.assets,
		Links:  strings.Join(links, "\n"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render index page: %w", err)
	}
	return buf.String(), nil
}
