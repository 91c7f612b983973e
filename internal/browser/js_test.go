package browser

import (
	"strings"
	"testing"

	"github.com/yourorg/hceweb/internal/render"
	"github.com/yourorg/hceweb/internal/session"
	"github.com/yourorg/hceweb/internal/storage"
)

// El Browser debe cumplir todos los puertos
var (
	_ storage.Store      = (*Browser)(nil)
	_ session.Navigator  = (*Browser)(nil)
	_ render.Renderer    = (*Browser)(nil)
	_ render.FormScanner = (*Browser)(nil)
	_ render.Notifier    = (*Browser)(nil)
)

func TestJSArgsQuoteValues(t *testing.T) {
	args := jsArgs(`a"b`, "</script>", 3)

	if args[0] != `"a\"b"` {
		t.Errorf("Unexpected quoting %v", args[0])
	}
	// encoding/json escapa < y > para HTML
	if args[1] != `"\u003c/script\u003e"` {
		t.Errorf("Unexpected quoting %v", args[1])
	}
	if args[2] != "3" {
		t.Errorf("Unexpected number %v", args[2])
	}
}

func TestStorageScripts(t *testing.T) {
	get := storageGetJS("token")
	if !strings.Contains(get, `localStorage.getItem("token")`) {
		t.Errorf("Unexpected get script: %s", get)
	}

	set := storageSetJS("user", `{"username":"jdoe"}`)
	if !strings.Contains(set, `localStorage.setItem("user", "{\"username\":\"jdoe\"}")`) {
		t.Errorf("Unexpected set script: %s", set)
	}

	rm := storageRemoveJS("token")
	if !strings.Contains(rm, `localStorage.removeItem("token")`) {
		t.Errorf("Unexpected remove script: %s", rm)
	}
}

func TestSetPropScript(t *testing.T) {
	js := setPropJS("sedeBadge", "style.backgroundColor", "#e74c3c")

	if !strings.HasPrefix(js, "(function(){") || !strings.HasSuffix(js, "})()") {
		t.Errorf("Expected IIFE, got %s", js)
	}
	if !strings.Contains(js, `document.getElementById("sedeBadge")`) {
		t.Errorf("Missing element lookup: %s", js)
	}
	if !strings.Contains(js, `el.style.backgroundColor = "#e74c3c"`) {
		t.Errorf("Missing assignment: %s", js)
	}
}

func TestFormScripts(t *testing.T) {
	js := requiredFieldsJS("loginForm")
	if !strings.Contains(js, `document.getElementById("loginForm")`) {
		t.Errorf("Missing form lookup: %s", js)
	}
	if !strings.Contains(js, `"input[required], select[required], textarea[required]"`) {
		t.Errorf("Missing selector: %s", js)
	}

	border := borderColorJS("loginForm", 2, "var(--danger-color)")
	if !strings.Contains(border, `[2]`) || !strings.Contains(border, `"var(--danger-color)"`) {
		t.Errorf("Unexpected border script: %s", border)
	}
}

func TestAlertScriptIsDeferred(t *testing.T) {
	js := alertJS("Contraseña actualizada")
	if !strings.Contains(js, "setTimeout") || !strings.Contains(js, `"Contraseña actualizada"`) {
		t.Errorf("Unexpected alert script: %s", js)
	}
}

func TestDetectChromeExplicitWins(t *testing.T) {
	if got := DetectChrome("/opt/chrome/chrome"); got != "/opt/chrome/chrome" {
		t.Errorf("Expected explicit path, got %s", got)
	}
}

func TestChromeCandidates(t *testing.T) {
	for _, goos := range []string{"windows", "darwin", "linux"} {
		if len(chromeCandidates(goos)) == 0 {
			t.Errorf("Expected candidates for %s", goos)
		}
	}
}
