package services

import (
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ResumeParserService extracts the candidate profile pieces from an uploaded
// resume document. Only PDF and DOCX are supported.
type ResumeParserService interface {
	ExtractText(filePath string) (string, error)
	ExtractSkills(text string) []string
	ExtractSections(text string) map[string]string
}

// skillVocabulary is the fixed keyword list matched case-insensitively
// against the resume text.
var skillVocabulary = []string{
	"python", "java", "sql", "machine learning", "deep learning",
	"nlp", "excel", "aws", "tensorflow", "keras", "pandas", "numpy",
}

type sectionPattern struct {
	name    string
	pattern *regexp.Regexp
}

// sectionPatterns is ordered; the first header pattern matching a line wins.
var sectionPatterns = []sectionPattern{
	{"experience", regexp.MustCompile(`(?i)(experience|work history|professional experience)`)},
	{"education", regexp.MustCompile(`(?i)(education|academic background|qualifications)`)},
	{"projects", regexp.MustCompile(`(?i)(projects|research experience|portfolio)`)},
	{"skills", regexp.MustCompile(`(?i)(skills|technical skills|expertise)`)},
}

var docxTagPattern = regexp.MustCompile(`<[^>]*>`)

type resumeParserService struct{}

func NewResumeParserService() ResumeParserService {
	return &resumeParserService{}
}

// ExtractText implements ResumeParserService.
func (r *resumeParserService) ExtractText(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".pdf":
		return r.extractPDF(filePath)
	case ".docx":
		return r.extractDOCX(filePath)
	default:
		return "", fmt.Errorf("unsupported file format: %s (only PDF and DOCX are accepted)", ext)
	}
}

func (r *resumeParserService) extractPDF(filePath string) (string, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

func (r *resumeParserService) extractDOCX(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// Paragraph closes become line breaks so header detection still works,
	// then the remaining markup is stripped.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagPattern.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}

	return content, nil
}

// ExtractSkills implements ResumeParserService. Matches are deduplicated by
// construction; order follows the vocabulary, not the document.
func (r *resumeParserService) ExtractSkills(text string) []string {
	textLower := strings.ToLower(text)

	var skills []string
	for _, skill := range skillVocabulary {
		if strings.Contains(textLower, skill) {
			skills = append(skills, skill)
		}
	}

	return skills
}

// ExtractSections implements ResumeParserService. Once a header line
// matches, every line (the header included) accumulates into that section
// until a different header matches. Unmatched sections stay empty.
func (r *resumeParserService) ExtractSections(text string) map[string]string {
	buffers := make(map[string][]string, len(sectionPatterns))
	for _, sp := range sectionPatterns {
		buffers[sp.name] = nil
	}

	currentSection := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, sp := range sectionPatterns {
			if sp.pattern.MatchString(line) {
				currentSection = sp.name
				break
			}
		}

		if currentSection != "" {
			buffers[currentSection] = append(buffers[currentSection], line)
		}
	}

	sections := make(map[string]string, len(buffers))
	for name, lines := range buffers {
		sections[name] = strings.Join(lines, " ")
	}

	return sections
}

// CandidateNameFromFilename derives the stored candidate identifier from an
// upload filename: extension stripped, underscores become spaces, words
// title-cased.
func CandidateNameFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.ReplaceAll(base, "_", " ")

	words := strings.Fields(base)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
