package inventory

import "testing"

func TestCollection_AddPreservesInsertionOrder(t *testing.T) {
	var c Collection[*Computer]
	c.Add(NewComputer("a"))
	c.Add(NewComputer("b"))
	c.Add(NewComputer("c"))

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := c.Items()[i].Name(); got != want {
			t.Errorf("Items()[%d].Name() = %q, want %q", i, got, want)
		}
	}
}

func TestCollection_Find(t *testing.T) {
	var c Collection[*Computer]
	first := NewComputer("web")
	second := NewComputer("web")
	c.Add(NewComputer("db"))
	c.Add(first)
	c.Add(second)

	t.Run("first match by insertion order", func(t *testing.T) {
		got, ok := c.Find("web")
		if !ok {
			t.Fatal("Find() did not find web")
		}
		if got != first {
			t.Error("Find() should return the first inserted match")
		}
	})

	t.Run("absent", func(t *testing.T) {
		if _, ok := c.Find("cache"); ok {
			t.Error("Find() reported a match for a name that was never added")
		}
	})
}

// Components carry no name, so lookup over a component collection never
// matches.
func TestCollection_Find_UnnamedItems(t *testing.T) {
	var c Collection[Component]
	c.Add(NewCPU(4, 2500))
	c.Add(NewMemory(8192))

	if _, ok := c.Find("CPU"); ok {
		t.Error("Find() matched an unnamed component")
	}
}

func TestCollection_Clone_FreshStorage(t *testing.T) {
	var c Collection[*Computer]
	c.Add(NewComputer("a"))

	cloned := c.Clone()
	cloned.Add(NewComputer("b"))

	if c.Len() != 1 {
		t.Errorf("original Len() = %d after mutating clone, want 1", c.Len())
	}
	if cloned.Len() != 2 {
		t.Errorf("clone Len() = %d, want 2", cloned.Len())
	}
	if cloned.Items()[0] == c.Items()[0] {
		t.Error("clone shares a child instance with the original")
	}
}

func TestCollection_Clone_Empty(t *testing.T) {
	var c Collection[*Computer]

	cloned := c.Clone()
	if cloned.Len() != 0 {
		t.Errorf("clone Len() = %d, want 0", cloned.Len())
	}
}
