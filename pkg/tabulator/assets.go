package tabulator

import (
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
)

// ComponentJS is the browser-side bridge module. It imports Tabulator,
// renders payloads into output elements and wires slider inputs to
// re-fetches. Applications serve it from ComponentPath (or anywhere else)
// via ComponentHandler.
//
//go:embed tableComponent.js
var ComponentJS string

const (
	// WidgetVersion is the pinned Tabulator release.
	WidgetVersion = "5.5.2"

	// StylesheetURL is the widget's CSS, loaded from the unpkg CDN.
	StylesheetURL = "https://unpkg.com/tabulator-tables@" + WidgetVersion + "/dist/css/tabulator.min.css"

	// ComponentPath is the conventional route for the bridge module.
	ComponentPath = "/assets/tableComponent.js"

	// OutputClass marks the elements the bridge module binds to.
	OutputClass = "tabulator-output"
)

// ComponentHandler serves the embedded bridge module.
func ComponentHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		_, _ = w.Write([]byte(ComponentJS))
	})
}

// HeadAssets returns the tags for global asset registration: the widget
// stylesheet and the bridge module, meant for the page head.
func HeadAssets(componentPath string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<link href=%q rel="stylesheet">`+"\n"+
			`<script type="module" src=%q></script>`,
		StylesheetURL, componentPath))
}

// Output returns a table output element. The element carries the endpoint
// the bridge module fetches payloads from and, optionally via inputID, the
// id of a slider whose value becomes the endpoint's rows parameter.
func Output(id, endpoint, inputID, height string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<div id=%q class=%q data-endpoint=%q data-input=%q style="height: %s"></div>`,
		template.HTMLEscapeString(id), OutputClass,
		template.HTMLEscapeString(endpoint), template.HTMLEscapeString(inputID),
		template.HTMLEscapeString(height)))
}

// OutputWithAssets returns a table output element with its asset tags
// co-located: the stylesheet link and module script ride along with the
// element instead of being declared in the page head. Repeating the tags per
// output is safe, the browser deduplicates both.
func OutputWithAssets(id, endpoint, inputID, height, componentPath string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<link href=%q rel="stylesheet">`+"\n"+
			`<script type="module" src=%q></script>`+"\n"+
			`%s`,
		StylesheetURL, componentPath, Output(id, endpoint, inputID, height)))
}
