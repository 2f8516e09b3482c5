package compressors

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdfshrink/internal/domain/entities"
)

var disableConfigDirOnce sync.Once

// PDFCPUAssembler собирает PDF из изображений страниц с помощью PDFCPU
type PDFCPUAssembler struct {
	conf *model.Configuration
}

// NewPDFCPUAssembler создает новый PDFCPU сборщик
func NewPDFCPUAssembler() *PDFCPUAssembler {
	// PDFCPU не должен создавать каталог конфигурации в домашней директории
	disableConfigDirOnce.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &PDFCPUAssembler{conf: conf}
}

// Assemble создает документ, в котором каждая страница целиком занята своим изображением
func (a *PDFCPUAssembler) Assemble(pages []entities.PageImage) ([]byte, error) {
	if len(pages) == 0 {
		return nil, errors.New("нет страниц для сборки документа")
	}

	// Размер страницы задается для каждого изображения отдельно,
	// поэтому страницы добавляются в документ по одной
	var current []byte
	for i, page := range pages {
		if page.Width <= 0 || page.Height <= 0 {
			return nil, fmt.Errorf("страница %d: некорректный размер %.2fx%.2f", i+1, page.Width, page.Height)
		}

		imp := pdfcpu.DefaultImportConfig()
		imp.PageDim = &types.Dim{Width: page.Width, Height: page.Height}
		imp.UserDim = true
		imp.Pos = types.Center
		imp.Scale = 1.0
		imp.ScaleAbs = false

		var rs io.ReadSeeker
		if current != nil {
			rs = bytes.NewReader(current)
		}

		var out bytes.Buffer
		if err := api.ImportImages(rs, &out, []io.Reader{bytes.NewReader(page.Data)}, imp, a.conf); err != nil {
			return nil, fmt.Errorf("ошибка добавления страницы %d (PDFCPU): %w", i+1, err)
		}
		current = out.Bytes()
	}

	return current, nil
}
