package ingest

import (
	"regexp"
	"strings"

	"github.com/interviewcoach/CoachAPI/internal/domain/commonModels"
)

var (
	whitespaceRe  = regexp.MustCompile(`[ \t]+`)
	specialsRe    = regexp.MustCompile(`[^\w\s.,;:!?()\-/+#]`)
	newlinesRe    = regexp.MustCompile(`\n{2,}`)
	periodLineRe  = regexp.MustCompile(`^\d{4}\s*-\s*(\d{4}|[Pp]resent)$`)
	bulletPrefix  = regexp.MustCompile(`^[-*•]\s*`)
	skillSplitter = regexp.MustCompile(`[,;]`)
)

// knownSkills is the match list for skill extraction. Matching is
// case-insensitive on whole tokens so "go" in prose does not count.
var knownSkills = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust", "C++", "C#",
	"Docker", "Kubernetes", "Terraform",
	"AWS", "GCP", "Azure",
	"SQL", "NoSQL", "PostgreSQL", "MySQL", "MongoDB", "Redis",
	"Kafka", "gRPC", "GraphQL", "REST",
	"React", "Angular", "Vue",
	"Linux", "Git", "CI/CD",
}

// CleanResumeText normalizes extracted resume text. Collapses runs of spaces,
// strips characters outside basic punctuation and squeezes blank lines, but
// keeps single newlines so section structure survives for the extractors.
func CleanResumeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = specialsRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = newlinesRe.ReplaceAllString(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ExtractSkills returns the known skills mentioned anywhere in the resume, in
// knownSkills order, without duplicates.
func ExtractSkills(text string) []string {
	tokens := map[string]bool{}
	for _, line := range strings.Split(text, "\n") {
		line = bulletPrefix.ReplaceAllString(line, "")
		for _, part := range skillSplitter.Split(line, -1) {
			for _, tok := range strings.Fields(part) {
				tokens[strings.ToLower(strings.Trim(tok, ".,;:!?()"))] = true
			}
		}
	}

	skills := []string{}
	for _, skill := range knownSkills {
		if tokens[strings.ToLower(skill)] {
			skills = append(skills, skill)
		}
	}
	return skills
}

// ExtractExperience finds employment entries by locating period lines like
// "2020 - Present" and reading the company from the line above and the title
// from the line above that.
func ExtractExperience(text string) []commonModels.ExperienceEntry {
	lines := strings.Split(text, "\n")
	entries := []commonModels.ExperienceEntry{}

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if !periodLineRe.MatchString(line) || i < 2 {
			continue
		}
		entries = append(entries, commonModels.ExperienceEntry{
			Title:   strings.TrimSpace(lines[i-2]),
			Company: strings.TrimSpace(lines[i-1]),
			Period:  line,
		})
	}
	return entries
}

// ExtractResumeMetadata bundles skill and experience extraction for the
// ingest job result.
func ExtractResumeMetadata(text string) commonModels.ResumeMetadata {
	return commonModels.ResumeMetadata{
		Skills:     ExtractSkills(text),
		Experience: ExtractExperience(text),
	}
}
