package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

func TestFromFileTxt(t *testing.T) {
	text, err := FromFile("notes.txt", []byte("plain contents"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "plain contents" {
		t.Fatalf("expected raw bytes back, got %q", text)
	}
}

func TestFromFileExtensionCaseInsensitive(t *testing.T) {
	text, err := FromFile("NOTES.TXT", []byte("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "x" {
		t.Fatalf("expected %q, got %q", "x", text)
	}
}

func TestFromFileUnsupported(t *testing.T) {
	for _, name := range []string{"image.png", "archive.zip", "noextension"} {
		_, err := FromFile(name, []byte("data"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}

func TestFromFileDocx(t *testing.T) {
	content := buildDocx(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
    <w:p/>
  </w:body>
</w:document>`)

	text, err := FromFile("report.docx", content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "First paragraph.\nSecond paragraph.\n"
	if text != want {
		t.Fatalf("expected %q, got %q", want, text)
	}
}

func TestFromFileDocxMissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	writeZipFile(t, zw, "[Content_Types].xml", contentTypesXML)
	writeZipFile(t, zw, "_rels/.rels", packageRelsXML)
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := FromFile("broken.docx", buf.Bytes()); err == nil {
		t.Fatal("expected error for docx without document part")
	}
}

func TestFromFileDocxNotAZip(t *testing.T) {
	if _, err := FromFile("broken.docx", []byte("not an archive")); err == nil {
		t.Fatal("expected error for non-zip docx")
	}
}

func TestFromFileCorruptPDF(t *testing.T) {
	if _, err := FromFile("bad.pdf", []byte("not a pdf")); err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

// buildDocx assembles a minimal OOXML package around the given document part.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	writeZipFile(t, zw, "[Content_Types].xml", contentTypesXML)
	writeZipFile(t, zw, "_rels/.rels", packageRelsXML)
	writeZipFile(t, zw, "word/_rels/document.xml.rels", documentRelsXML)
	writeZipFile(t, zw, "word/document.xml", documentXML)
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writeZipFile(t *testing.T, zw *zip.Writer, name, content string) {
	t.Helper()
	w, err := zw.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
}
