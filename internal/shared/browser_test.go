package shared

import "testing"

func TestOpenBrowser(t *testing.T) {
	t.Run("Unsupported Platform", func(t *testing.T) {
		original := getRuntime
		defer func() { getRuntime = original }()
		getRuntime = func() string { return "plan9" }

		err := OpenBrowser("https://example.com")
		if err == nil {
			t.Error("expected error for unsupported platform")
		}
	})
}
