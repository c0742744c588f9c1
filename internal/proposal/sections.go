package proposal

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// markerPattern совпадает с ===NAME===, где имя состоит из A-Z, 0-9, _ и пробелов.
var markerPattern = regexp.MustCompile(`===\s*([A-Z0-9_ ]+)\s*===`)

// Section одна именованная часть ответа.
type Section struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// SectionMap упорядоченное отображение имя секции -> текст.
// Повторная запись по существующему ключу меняет значение, но не позицию.
type SectionMap struct {
	keys   []string
	bodies map[string]string
}

// NewSectionMap создаёт пустую карту секций.
func NewSectionMap() *SectionMap {
	return &SectionMap{bodies: make(map[string]string)}
}

// Set добавляет секцию или перезаписывает тело существующей.
func (m *SectionMap) Set(name, body string) {
	if _, ok := m.bodies[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.bodies[name] = body
}

// Get возвращает тело секции.
func (m *SectionMap) Get(name string) (string, bool) {
	body, ok := m.bodies[name]
	return body, ok
}

// Len количество уникальных секций.
func (m *SectionMap) Len() int {
	return len(m.keys)
}

// Keys имена секций в порядке первого появления.
func (m *SectionMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Sections возвращает секции в порядке первого появления.
func (m *SectionMap) Sections() []Section {
	out := make([]Section, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Section{Name: k, Body: m.bodies[k]})
	}
	return out
}

// MarshalJSON пишет объект с ключами в порядке вставки.
func (m *SectionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.bodies[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseKind различает результат разбора.
type ParseKind int

const (
	// Unstructured маркеры не найдены, показывать нужно исходный текст.
	Unstructured ParseKind = iota
	// Structured найден хотя бы один маркер.
	Structured
)

func (k ParseKind) String() string {
	if k == Structured {
		return "structured"
	}
	return "unstructured"
}

// ParseResult результат разбора: либо Unstructured, либо Structured с картой секций.
type ParseResult struct {
	Kind     ParseKind
	sections *SectionMap
}

// IsStructured сообщает, найдены ли секции.
func (r ParseResult) IsStructured() bool {
	return r.Kind == Structured && r.sections != nil
}

// Sections возвращает карту секций. Для Unstructured второй результат false.
func (r ParseResult) Sections() (*SectionMap, bool) {
	if !r.IsStructured() {
		return nil, false
	}
	return r.sections, true
}

// ParseSections режет текст по маркерам ===NAME===.
// Текст до первого маркера отбрасывается, тела секций обрезаются по краям.
// Пустой текст и текст без маркеров дают Unstructured.
func ParseSections(text string) ParseResult {
	if text == "" {
		return ParseResult{Kind: Unstructured}
	}

	matches := markerPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return ParseResult{Kind: Unstructured}
	}

	sections := NewSectionMap()
	for i, m := range matches {
		// m[0], m[1] границы маркера, m[2], m[3] границы имени.
		name := strings.TrimSpace(text[m[2]:m[3]])
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections.Set(name, strings.TrimSpace(text[m[1]:end]))
	}

	return ParseResult{Kind: Structured, sections: sections}
}

// SectionTitle делает из имени маркера заголовок для показа.
func SectionTitle(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
