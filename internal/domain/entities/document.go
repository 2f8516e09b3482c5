package entities

// InputDocument представляет исходный PDF документ в памяти.
// Документ не изменяется после создания.
type InputDocument struct {
	Name string
	Size int64
	Data []byte
}

// NewInputDocument создает документ из содержимого файла
func NewInputDocument(name string, data []byte) InputDocument {
	return InputDocument{
		Name: name,
		Size: int64(len(data)),
		Data: data,
	}
}

// DocumentKey идентификатор документа для поиска дубликатов
type DocumentKey struct {
	Name string
	Size int64
}

// Key возвращает идентификатор документа (имя и размер)
func (d InputDocument) Key() DocumentKey {
	return DocumentKey{Name: d.Name, Size: d.Size}
}

// InputQueue упорядоченная очередь документов без дубликатов.
//
// Два документа с одинаковым именем и размером считаются одним и тем же,
// содержимое не сравнивается.
type InputQueue struct {
	documents []InputDocument
}

// NewInputQueue создает пустую очередь
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Add добавляет документ в конец очереди.
// Для дубликата возвращает ErrDuplicateInput, очередь при этом не меняется.
func (q *InputQueue) Add(doc InputDocument) error {
	key := doc.Key()
	for _, existing := range q.documents {
		if existing.Key() == key {
			return ErrDuplicateInput
		}
	}
	q.documents = append(q.documents, doc)
	return nil
}

// Remove удаляет документ по индексу
func (q *InputQueue) Remove(index int) bool {
	if index < 0 || index >= len(q.documents) {
		return false
	}
	q.documents = append(q.documents[:index], q.documents[index+1:]...)
	return true
}

// Clear очищает очередь
func (q *InputQueue) Clear() {
	q.documents = nil
}

// Len возвращает количество документов
func (q *InputQueue) Len() int {
	return len(q.documents)
}

// TotalSize суммарный размер документов в байтах
func (q *InputQueue) TotalSize() int64 {
	var total int64
	for _, doc := range q.documents {
		total += doc.Size
	}
	return total
}

// Documents возвращает копию списка документов в порядке добавления
func (q *InputQueue) Documents() []InputDocument {
	docs := make([]InputDocument, len(q.documents))
	copy(docs, q.documents)
	return docs
}
