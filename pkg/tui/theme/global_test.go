// ABOUTME: Tests for the active theme: default, Set, and styles swapped with the theme
// ABOUTME: Not parallel: Set changes process-wide state

package theme

import (
	"sync"
	"testing"
)

func TestCurrent_DefaultsToDark(t *testing.T) {
	if got := Current().Name; got != "dark" {
		t.Errorf("Current().Name = %q; want dark", got)
	}
}

func TestSet_SwapsStyles(t *testing.T) {
	old := Current()
	defer Set(old)

	light := Builtin("light")
	Set(light)
	if got := Current(); got != light {
		t.Fatalf("Current() = %q; want light", got.Name)
	}
	want := light.Styles().Title.GetForeground()
	if got := CurrentStyles().Title.GetForeground(); got != want {
		t.Errorf("CurrentStyles().Title foreground = %v; want %v", got, want)
	}
}

func TestCurrentStyles_ConcurrentWithSet(t *testing.T) {
	old := Current()
	defer Set(old)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = CurrentStyles().Title.Render("x")
		}()
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				Set(Builtin("light"))
			} else {
				Set(Builtin("dark"))
			}
		}()
	}
	wg.Wait()
}
