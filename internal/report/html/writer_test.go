package html

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nettree/internal/inventory"
)

// testNetwork builds a small tree covering every component variant.
func testNetwork() *inventory.Network {
	return inventory.NewNetwork("lab").AddComputer(
		inventory.NewComputer("host1").
			AddAddress("10.0.0.1").
			AddComponent(inventory.NewMemory(8192)).
			AddComponent(inventory.NewDisk(inventory.DiskSSD, 512).AddPartition(512, "root")),
	)
}

func TestNewWriter(t *testing.T) {
	t.Run("default template", func(t *testing.T) {
		w := NewWriter("")
		if w.templatePath != "" {
			t.Errorf("templatePath = %q, want empty", w.templatePath)
		}
	})

	t.Run("custom template path", func(t *testing.T) {
		w := NewWriter("/path/to/template.html")
		if w.templatePath != "/path/to/template.html" {
			t.Errorf("templatePath = %q, want custom path", w.templatePath)
		}
	})
}

func TestWriter_Format(t *testing.T) {
	w := NewWriter("")
	if w.Format() != "html" {
		t.Errorf("Format() = %q, want html", w.Format())
	}
}

func TestWriter_Write_NilNetwork(t *testing.T) {
	w := NewWriter("")
	if err := w.Write(nil, "test.html"); err == nil {
		t.Error("Write() with nil network should return error")
	}
}

func TestWriter_Write_Success(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report.html")

	w := NewWriter("")
	if err := w.Write(testNetwork(), outputPath); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"Network: lab",
		"host1",
		"10.0.0.1",
		"Memory, 8192 MiB",
		"SSD, 512 GiB",
		"[0]: 512 GiB, root",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("output should contain %q", want)
		}
	}

	// The <pre> block carries the exact tree rendering.
	if !strings.Contains(content, `\-SSD, 512 GiB`) {
		t.Error("output should contain the ASCII tree")
	}
}

func TestWriter_Write_CustomTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "custom.html")
	if err := os.WriteFile(templatePath, []byte("custom: {{.NetworkName}}"), 0o644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}

	outputPath := filepath.Join(tmpDir, "report.html")
	w := NewWriter(templatePath)
	if err := w.Write(testNetwork(), outputPath); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, _ := os.ReadFile(outputPath)
	if string(data) != "custom: lab" {
		t.Errorf("output = %q, want custom template rendering", string(data))
	}
}

func TestWriter_Write_MissingCustomTemplate(t *testing.T) {
	w := NewWriter("/nonexistent/template.html")
	err := w.Write(testNetwork(), filepath.Join(t.TempDir(), "report.html"))
	if err == nil {
		t.Error("Write() should fail when the custom template does not exist")
	}
}
