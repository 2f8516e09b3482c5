package usecases

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
)

// fakeRaster растр без выделения памяти под пиксели
type fakeRaster struct {
	rect image.Rectangle
}

func (r fakeRaster) ColorModel() color.Model { return color.RGBAModel }
func (r fakeRaster) Bounds() image.Rectangle { return r.rect }
func (r fakeRaster) At(x, y int) color.Color { return color.White }

type fakePage struct {
	width, height float64
}

type fakeDocLayout struct {
	pages      []fakePage
	failRender int // номер страницы с 1, 0 - без ошибки
	failSize   int
}

type renderCall struct {
	page  int
	scale float64
}

type fakeRasterizer struct {
	docs    map[string]fakeDocLayout
	opened  int
	closed  int
	renders []renderCall
}

func (f *fakeRasterizer) Open(data []byte) (repositories.RasterDocument, error) {
	f.opened++
	layout, ok := f.docs[string(data)]
	if !ok {
		return nil, errors.New("поврежденный документ")
	}
	return &fakeRasterDocument{layout: layout, owner: f}, nil
}

type fakeRasterDocument struct {
	layout fakeDocLayout
	owner  *fakeRasterizer
}

func (d *fakeRasterDocument) NumPages() int { return len(d.layout.pages) }

func (d *fakeRasterDocument) Render(page int, scale float64) (image.Image, error) {
	d.owner.renders = append(d.owner.renders, renderCall{page: page, scale: scale})
	if d.layout.failRender == page+1 {
		return nil, errors.New("ошибка отрисовки")
	}
	p := d.layout.pages[page]
	return fakeRaster{rect: image.Rect(0, 0, int(p.width*scale), int(p.height*scale))}, nil
}

func (d *fakeRasterDocument) IntrinsicSize(page int) (float64, float64, error) {
	if d.layout.failSize == page+1 {
		return 0, 0, errors.New("нет размеров страницы")
	}
	p := d.layout.pages[page]
	return p.width, p.height, nil
}

func (d *fakeRasterDocument) Close() error {
	d.owner.closed++
	return nil
}

// fakeEncoder кодирует растр в строку с его размерами и качеством
type fakeEncoder struct {
	qualities []float64
	failCall  int // номер вызова с 1, 0 - без ошибки
}

func (e *fakeEncoder) Encode(img image.Image, quality float64) ([]byte, error) {
	e.qualities = append(e.qualities, quality)
	if e.failCall == len(e.qualities) {
		return nil, errors.New("ошибка кодирования")
	}
	b := img.Bounds()
	return []byte(fmt.Sprintf("%dx%d@%.2f;", b.Dx(), b.Dy(), quality)), nil
}

// fakeAssembler склеивает изображения страниц
type fakeAssembler struct {
	pages []entities.PageImage
	calls int
	err   error
}

func (a *fakeAssembler) Assemble(pages []entities.PageImage) ([]byte, error) {
	a.calls++
	a.pages = pages
	if a.err != nil {
		return nil, a.err
	}
	var out []byte
	for _, page := range pages {
		out = append(out, page.Data...)
	}
	return out, nil
}

type transcodeCall struct {
	document string
	tier     string
}

// fakeTranscoder возвращает заранее заданные размеры результата
// для каждого документа и уровня качества
type fakeTranscoder struct {
	sizes map[string]map[string]int
	pages map[string]int
	errs  map[string]error
	calls []transcodeCall
}

func newFakeTranscoder() *fakeTranscoder {
	return &fakeTranscoder{
		sizes: make(map[string]map[string]int),
		pages: make(map[string]int),
		errs:  make(map[string]error),
	}
}

func (f *fakeTranscoder) set(name string, pages, primary, fallback int) {
	f.pages[name] = pages
	f.sizes[name] = map[string]int{
		entities.PrimaryTier.Name:  primary,
		entities.FallbackTier.Name: fallback,
	}
}

func (f *fakeTranscoder) Execute(doc entities.InputDocument, tier entities.QualityTier) ([]byte, int, error) {
	f.calls = append(f.calls, transcodeCall{document: doc.Name, tier: tier.Name})
	if err := f.errs[doc.Name]; err != nil {
		return nil, 0, err
	}
	return bytes.Repeat([]byte{'x'}, f.sizes[doc.Name][tier.Name]), f.pages[doc.Name], nil
}

func (f *fakeTranscoder) callsFor(name string) []string {
	var tiers []string
	for _, call := range f.calls {
		if call.document == name {
			tiers = append(tiers, call.tier)
		}
	}
	return tiers
}

// fakeFileRepository файловая система в памяти
type fakeFileRepository struct {
	files     map[string][]byte
	pages     map[string]int
	dirs      map[string]bool
	written   map[string][]byte
	infoCalls []string
}

func newFakeFileRepository() *fakeFileRepository {
	return &fakeFileRepository{
		files:   make(map[string][]byte),
		pages:   make(map[string]int),
		dirs:    make(map[string]bool),
		written: make(map[string][]byte),
	}
}

func (r *fakeFileRepository) GetFileInfo(path string) (*entities.PDFDocument, error) {
	r.infoCalls = append(r.infoCalls, path)
	data, ok := r.files[path]
	if !ok {
		return nil, entities.ErrFileNotFound
	}
	return &entities.PDFDocument{Path: path, Size: int64(len(data)), Pages: r.pages[path]}, nil
}

func (r *fakeFileRepository) FileExists(path string) bool {
	_, ok := r.files[path]
	return ok || r.dirs[path]
}

func (r *fakeFileRepository) CreateDirectory(path string) error {
	r.dirs[path] = true
	return nil
}

func (r *fakeFileRepository) ListPDFFiles(directory string) ([]string, error) {
	var files []string
	for path := range r.files {
		if strings.HasPrefix(path, directory+"/") && strings.EqualFold(filepath.Ext(path), ".pdf") {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (r *fakeFileRepository) LoadDocument(path string) (entities.InputDocument, error) {
	data, ok := r.files[path]
	if !ok {
		return entities.InputDocument{}, fmt.Errorf("%w: %s", entities.ErrFileNotFound, path)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return entities.InputDocument{}, fmt.Errorf("%w: %s", entities.ErrInvalidFileFormat, path)
	}
	return entities.NewInputDocument(filepath.Base(path), data), nil
}

func (r *fakeFileRepository) WriteFile(path string, data []byte) error {
	r.written[path] = data
	return nil
}

// fakeArchiver записывает в архив имена результатов
type fakeArchiver struct {
	archived []string
}

func (a *fakeArchiver) Archive(w io.Writer, summary *entities.BatchSummary) error {
	for _, result := range summary.Results {
		a.archived = append(a.archived, result.Name)
		if _, err := io.WriteString(w, result.Name+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (a *fakeArchiver) ArchiveName(prefix string) string {
	return prefix + ".zip"
}

// fakeLogger запоминает отформатированные сообщения
type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) record(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *fakeLogger) Debug(format string, args ...interface{}) {
	l.record(format, args...)
}

func (l *fakeLogger) Info(format string, args ...interface{}) {
	l.record(format, args...)
}

func (l *fakeLogger) Warning(format string, args ...interface{}) {
	l.record(format, args...)
}

func (l *fakeLogger) Error(format string, args ...interface{}) {
	l.record(format, args...)
}

func (l *fakeLogger) Success(format string, args ...interface{}) {
	l.record(format, args...)
}

func (l *fakeLogger) Close() error {
	return nil
}

// hasLine сообщает, есть ли сообщение, содержащее все части
func (l *fakeLogger) hasLine(parts ...string) bool {
	for _, line := range l.lines {
		matched := true
		for _, part := range parts {
			if !strings.Contains(line, part) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
