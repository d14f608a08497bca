package export

import (
	"fmt"
	"html/template"
	"image"
	"io"

	"github.com/gogpu/photobooth/capture"
)

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body {
  margin: 0;
  padding: 20px;
  display: flex;
  justify-content: center;
  align-items: center;
  min-height: 100vh;
}
img {
  max-width: 100%;
  max-height: 100vh;
  object-fit: contain;
}
@media print {
  body { padding: 0; }
}
</style>
</head>
<body>
<img src="{{.Src}}" alt="{{.Alt}}">
<script>
window.onload = function() {
  window.print();
  window.onafterprint = function() {
    window.close();
  };
};
</script>
</body>
</html>
`))

type printData struct {
	Title string
	Alt   string
	Src   template.URL
}

// PrintPage writes an HTML page showing img scaled to the paper and
// triggering the print dialog on load. The page closes itself after
// printing.
func PrintPage(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrNoComposition
	}
	url, err := capture.EncodeDataURL(img)
	if err != nil {
		return fmt.Errorf("export: print: %w", err)
	}

	data := printData{
		Title: "Cetak Foto",
		Alt:   "Photobooth Result",
		// Produced by EncodeDataURL, always a base64 image/png data URL.
		Src: template.URL(url),
	}
	if err := printTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("export: print: %w", err)
	}
	return nil
}
