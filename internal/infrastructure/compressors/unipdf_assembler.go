package compressors

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/unidoc/unipdf/v3/common"
	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/creator"

	"pdfshrink/internal/domain/entities"
)

// ErrUniPDFLicenseMissing UniPDF не работает без лицензионного ключа
var ErrUniPDFLicenseMissing = errors.New("UniPDF требует лицензионный ключ. Установите его в конфигурации или в переменной UNIDOC_LICENSE_API_KEY, либо используйте сборщик 'pdfcpu'")

// UniPDFAssembler собирает PDF из изображений страниц с помощью UniPDF
type UniPDFAssembler struct {
	licenseKey string
}

// NewUniPDFAssembler создает новый UniPDF сборщик.
// Пустой ключ берется из переменной окружения UNIDOC_LICENSE_API_KEY.
func NewUniPDFAssembler(licenseKey string) *UniPDFAssembler {
	if licenseKey == "" {
		licenseKey = os.Getenv("UNIDOC_LICENSE_API_KEY")
	}
	return &UniPDFAssembler{licenseKey: licenseKey}
}

// Activate устанавливает лицензионный ключ UniPDF
func (u *UniPDFAssembler) Activate() error {
	if u.licenseKey == "" {
		return ErrUniPDFLicenseMissing
	}

	common.SetLogger(common.NewConsoleLogger(common.LogLevelError))

	if err := license.SetMeteredKey(u.licenseKey); err != nil {
		return fmt.Errorf("ошибка активации лицензии UniPDF: %w", err)
	}
	return nil
}

// Assemble создает документ: для каждого изображения добавляется страница
// его размера, изображение рисуется от левого верхнего угла на всю страницу
func (u *UniPDFAssembler) Assemble(pages []entities.PageImage) ([]byte, error) {
	if len(pages) == 0 {
		return nil, errors.New("нет страниц для сборки документа")
	}

	c := creator.New()
	for i, page := range pages {
		if page.Width <= 0 || page.Height <= 0 {
			return nil, fmt.Errorf("страница %d: некорректный размер %.2fx%.2f", i+1, page.Width, page.Height)
		}

		c.SetPageSize(creator.PageSize{page.Width, page.Height})
		c.NewPage()

		img, err := c.NewImageFromData(page.Data)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения страницы %d (UniPDF): %w", i+1, err)
		}
		img.SetPos(0, 0)
		img.SetWidth(page.Width)
		img.SetHeight(page.Height)

		if err := c.Draw(img); err != nil {
			return nil, fmt.Errorf("ошибка размещения изображения на странице %d (UniPDF): %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return nil, fmt.Errorf("ошибка записи документа (UniPDF): %w", err)
	}

	return buf.Bytes(), nil
}
