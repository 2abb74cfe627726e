// =============================================================================
// parts-table - HTML Renderer
// =============================================================================
//
// Produces the self-contained HTML documents: one page per component group
// and one index page. Pages embed Bootstrap and DataTables from CDNs; those
// are browser-side dependencies only, the generator never touches the
// network.
//
// Rendering goes through text/template, NOT html/template: cell data is
// inserted verbatim. Existing outputs depend on cell text passing through
// unescaped, so switching to escaping templates would change results for
// inputs containing literal '<' or '&'.
//
// =============================================================================

package htmlwriter

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/partsbench/parts-table/internal/table"
)

// Assets holds the CDN URLs embedded into every page.
type Assets struct {
	BootstrapCSS  string
	DataTablesCSS string
	JQueryJS      string
	DataTablesJS  string
}

// pageTemplate is the shell of a component page. TableContent arrives as a
// pre-rendered fragment.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link href="{{.Assets.BootstrapCSS}}" rel="stylesheet">
    <link rel="stylesheet" href="{{.Assets.DataTablesCSS}}">
</head>
<body>

<div class="container my-4">
    <h2 class="text-center">{{.Title}}</h2>
    <div class="table-responsive">
        {{.TableContent}}
    </div>
</div>

<script src="{{.Assets.JQueryJS}}"></script>
<script src="{{.Assets.DataTablesJS}}"></script>
<script>
    $(document).ready(function() {
        $('#componentsTable').DataTable();
    });

    function copyToClipboard(text) {
        // Re-split the comma-joined row and copy it tab-delimited.
        const tabDelimitedText = text.split(',').map(item => item.trim()).join('\t');

        navigator.clipboard.writeText(tabDelimitedText).then(function() {
            alert('Copied to clipboard: ' + tabDelimitedText);
        }, function(err) {
            console.error('Could not copy text: ', err);
        });
    }
</script>

</body>
</html>
`))

// pageData feeds pageTemplate.
type pageData struct {
	Title        string
	Assets       Assets
	TableContent string
}

// Renderer builds HTML documents from expanded Tables.
type Renderer struct {
	assets Assets
}

// New returns a Renderer embedding the given CDN assets.
func New(assets Assets) *Renderer {
	return &Renderer{assets: assets}
}

// ComponentPage renders one group's page. The group name becomes the page
// title (underscores to spaces, words capitalized) suffixed with "Table".
func (r *Renderer) ComponentPage(group string, t *table.Table) (string, error) {
	return r.page(PageTitle(group)+" Table", t)
}

// page renders the document shell around the table fragment.
func (r *Renderer) page(title string, t *table.Table) (string, error) {
	var buf strings.Builder
	err := pageTemplate.Execute(&buf, pageData{
		Title:        title,
		Assets:       r.assets,
		TableContent: renderTable(t),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render page %q: %w", title, err)
	}
	return buf.String(), nil
}

// renderTable builds the sortable table fragment: one header cell per
// column plus the literal Copy header, one row per record plus its copy
// button. The button hands the comma-joined row values to the client-side
// clipboard script.
func renderTable(t *table.Table) string {
	var b strings.Builder

	b.WriteString("<table id=\"componentsTable\" class=\"table table-striped table-bordered\">\n")
	b.WriteString("  <thead><tr>")
	for _, h := range t.Headers {
		fmt.Fprintf(&b, "<th>%s</th>", h)
	}
	b.WriteString("<th>Copy</th></tr></thead>\n")

	b.WriteString("  <tbody>\n")
	for _, rec := range t.Records {
		values := t.Values(rec)
		b.WriteString("    <tr>")
		for _, v := range values {
			fmt.Fprintf(&b, "<td>%s</td>", v)
		}
		fmt.Fprintf(&b,
			"<td><button class='btn btn-primary btn-sm' onclick=\"copyToClipboard('%s')\">Copy</button></td>",
			strings.Join(values, ", "))
		b.WriteString("</tr>\n")
	}
	b.WriteString("  </tbody>\n")
	b.WriteString("</table>")

	return b.String()
}
