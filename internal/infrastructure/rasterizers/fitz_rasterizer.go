package rasterizers

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
)

// pointsPerInch единица измерения размеров страницы в PDF
const pointsPerInch = 72.0

var disableConfigDirOnce sync.Once

// FitzRasterizer растеризует страницы PDF с помощью MuPDF (go-fitz).
// Размеры страниц читаются через PDFCPU: MuPDF отдает их только
// в целых пунктах.
type FitzRasterizer struct {
	conf *model.Configuration
}

// NewFitzRasterizer создает новый растеризатор
func NewFitzRasterizer() *FitzRasterizer {
	disableConfigDirOnce.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &FitzRasterizer{conf: conf}
}

// Open разбирает документ из памяти
func (r *FitzRasterizer) Open(data []byte) (repositories.RasterDocument, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть документ: %w", err)
	}

	if doc.NumPage() <= 0 {
		doc.Close()
		return nil, fmt.Errorf("документ не содержит страниц")
	}

	return &fitzDocument{doc: doc, dims: r.pageDims(data, doc.NumPage())}, nil
}

// pageDims видимые размеры страниц в пунктах с учетом поворота.
// Если PDFCPU не смог разобрать документ, который открыл MuPDF,
// возвращается nil и размеры берутся из MuPDF.
func (r *FitzRasterizer) pageDims(data []byte, pages int) []types.Dim {
	ctx, err := api.ReadAndValidate(bytes.NewReader(data), r.conf)
	if err != nil {
		return nil
	}

	boundaries, err := ctx.PageBoundaries(nil)
	if err != nil || len(boundaries) != pages {
		return nil
	}

	dims := make([]types.Dim, len(boundaries))
	for i, pb := range boundaries {
		// MuPDF отрисовывает CropBox, по умолчанию равный MediaBox
		box := pb.CropBox()
		if box == nil {
			return nil
		}

		dim := box.Dimensions()
		if pb.Rot%180 != 0 {
			dim.Width, dim.Height = dim.Height, dim.Width
		}
		dims[i] = dim
	}

	return dims
}

// fitzDocument открытый MuPDF документ
type fitzDocument struct {
	doc  *fitz.Document
	dims []types.Dim
}

func (d *fitzDocument) NumPages() int {
	return d.doc.NumPage()
}

// Render растеризует страницу при 96*scale DPI и накладывает ее на белый фон
func (d *fitzDocument) Render(page int, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, entities.ErrInvalidRasterScale
	}

	img, err := d.doc.ImageDPI(page, entities.ReferenceDPI*scale)
	if err != nil {
		return nil, fmt.Errorf("не удалось отрисовать страницу %d: %w", page+1, err)
	}

	return FlattenOnWhite(img), nil
}

// IntrinsicSize размер страницы в пикселях при 96 DPI
func (d *fitzDocument) IntrinsicSize(page int) (float64, float64, error) {
	pointsToPixels := entities.ReferenceDPI / pointsPerInch

	if page >= 0 && page < len(d.dims) {
		dim := d.dims[page]
		if dim.Width > 0 && dim.Height > 0 {
			return dim.Width * pointsToPixels, dim.Height * pointsToPixels, nil
		}
	}

	bounds, err := d.doc.Bound(page)
	if err != nil {
		return 0, 0, fmt.Errorf("не удалось получить размер страницы %d: %w", page+1, err)
	}

	return float64(bounds.Dx()) * pointsToPixels, float64(bounds.Dy()) * pointsToPixels, nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
