package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleResume = `John Doe
Senior Data Engineer

Professional Experience
Built ETL pipelines with Python and SQL at Acme Corp.
Deployed models on AWS using TensorFlow.

Education
B.Tech in Computer Science, 2019.

Projects
NLP chatbot built with pandas and deep learning.

Technical Skills
Python, SQL, AWS, Machine Learning
`

func TestExtractSkills(t *testing.T) {
	parser := NewResumeParserService()

	skills := parser.ExtractSkills(sampleResume)

	// Order follows the vocabulary, not the document
	require.Equal(t, []string{
		"python", "sql", "machine learning", "deep learning",
		"nlp", "aws", "tensorflow", "pandas",
	}, skills)
}

func TestExtractSkills_NoMatches(t *testing.T) {
	parser := NewResumeParserService()
	require.Empty(t, parser.ExtractSkills("I enjoy gardening and chess."))
}

func TestExtractSections(t *testing.T) {
	parser := NewResumeParserService()

	sections := parser.ExtractSections(sampleResume)

	require.Contains(t, sections["experience"], "Professional Experience")
	require.Contains(t, sections["experience"], "ETL pipelines")
	require.Contains(t, sections["education"], "B.Tech in Computer Science")
	require.Contains(t, sections["projects"], "NLP chatbot")
	require.Contains(t, sections["skills"], "Technical Skills")

	// Content stays in its own section
	require.NotContains(t, sections["education"], "ETL pipelines")
}

func TestExtractSections_NoHeaders(t *testing.T) {
	parser := NewResumeParserService()

	sections := parser.ExtractSections("just a paragraph about nothing in particular")

	require.Equal(t, "", sections["experience"])
	require.Equal(t, "", sections["education"])
	require.Equal(t, "", sections["projects"])
	require.Equal(t, "", sections["skills"])
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	parser := NewResumeParserService()

	_, err := parser.ExtractText("/tmp/resume.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported file format")
}

func TestCandidateNameFromFilename(t *testing.T) {
	require.Equal(t, "John Doe", CandidateNameFromFilename("john_doe.pdf"))
	require.Equal(t, "Jane Smith Resume", CandidateNameFromFilename("JANE_SMITH_resume.docx"))
	require.Equal(t, "Priya", CandidateNameFromFilename("priya.PDF"))
}
