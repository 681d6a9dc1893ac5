package tabulator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHeadAssets(t *testing.T) {
	html := string(HeadAssets(ComponentPath))

	if !strings.Contains(html, StylesheetURL) {
		t.Error("head assets should link the widget stylesheet")
	}
	if !strings.Contains(html, `type="module"`) {
		t.Error("bridge script must load as a module")
	}
	if !strings.Contains(html, ComponentPath) {
		t.Error("head assets should reference the bridge module path")
	}
}

func TestOutput(t *testing.T) {
	html := string(Output("tabulatorTable", "/api/table", "rows", "200px"))

	for _, want := range []string{
		`id="tabulatorTable"`,
		`class="` + OutputClass + `"`,
		`data-endpoint="/api/table"`,
		`data-input="rows"`,
		`height: 200px`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output element %q is missing %q", html, want)
		}
	}
}

func TestOutputWithAssetsCoLocatesTags(t *testing.T) {
	html := string(OutputWithAssets("t", "/api/table", "rows", "200px", ComponentPath))

	if !strings.Contains(html, StylesheetURL) {
		t.Error("co-located output should carry the stylesheet link")
	}
	if !strings.Contains(html, ComponentPath) {
		t.Error("co-located output should carry the bridge module script")
	}
	if !strings.Contains(html, string(Output("t", "/api/table", "rows", "200px"))) {
		t.Error("co-located output should contain the plain output element")
	}
}

func TestComponentHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	ComponentHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, ComponentPath, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/javascript") {
		t.Errorf("Content-Type = %q, want text/javascript", ct)
	}
	if rec.Body.String() != ComponentJS {
		t.Error("handler should serve the embedded bridge module verbatim")
	}
}
