package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"smarthire/internal/models"
)

// ScoringEngine is the deterministic keyword analysis tier. It is a pure
// function over the two input strings: no I/O, no network, and it never
// fails, which makes it the guaranteed-success path of the fallback chain.
type ScoringEngine interface {
	Score(resumeText, jobText string) (*models.MatchAssessment, error)
}

type scoringEngine struct {
	logger *zap.Logger
}

func NewScoringEngine(logger *zap.Logger) ScoringEngine {
	return &scoringEngine{logger: logger}
}

// matchedSkill records a taxonomy hit together with its display labels.
// Category is carried for display only and never scored.
type matchedSkill struct {
	Skill    string
	Category string
	Weight   float64
}

// Experience extraction patterns, most explicit first. The first pattern
// that matches wins, so "5+ years of experience" beats an incidental bare
// "<N> years" elsewhere in the text.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience[:\s]+(\d+)\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`),
}

// Seniority tiers are checked in this order; the first tier with any
// keyword present in the resume wins.
var seniorityTiers = []struct {
	Level    string
	Keywords []string
}{
	{"senior", []string{"senior", "sr.", "lead", "principal", "staff", "architect"}},
	{"mid", []string{"mid-level", "intermediate", "engineer ii", "developer ii"}},
	{"junior", []string{"junior", "jr.", "entry", "associate", "graduate"}},
}

// Education tiers in priority order: the highest degree mentioned counts.
var educationTiers = []struct {
	Level    string
	Keywords []string
}{
	{"phd", []string{"ph.d", "phd", "doctorate", "doctoral"}},
	{"masters", []string{"master", "ms ", "m.s.", "msc", "m.sc", "mba"}},
	{"bachelors", []string{"bachelor", "bs ", "b.s.", "bsc", "b.sc", "ba ", "b.a."}},
	{"associates", []string{"associate", "as ", "a.s."}},
}

var knownCertifications = []string{
	"aws certified", "azure certified", "gcp certified",
	"pmp", "scrum master", "csm", "safe",
	"cissp", "security+", "ceh",
	"oracle certified", "microsoft certified",
	"ckad", "cka",
}

var educationDisplay = map[string]string{
	"phd":        "doctoral degree",
	"masters":    "master's degree",
	"bachelors":  "bachelor's degree",
	"associates": "associate degree",
}

var educationScores = map[string]int{
	"phd":        10,
	"masters":    8,
	"bachelors":  6,
	"associates": 4,
}

// Score implements ScoringEngine. Matching is deliberately crude:
// case-insensitive literal substring checks with no stemming or word
// boundaries. Absent data is treated as "no signal", never as an error.
func (e *scoringEngine) Score(resumeText, jobText string) (*models.MatchAssessment, error) {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)

	matched, missing, matchedWeight, totalWeight := matchSkills(resumeLower, jobLower)

	years := extractExperienceYears(resumeLower)
	level := detectSeniority(resumeLower)
	education := detectEducation(resumeLower)
	certifications := findCertifications(resumeLower)

	skillScore := 45
	if totalWeight > 0 {
		skillScore = int(math.Round(matchedWeight / totalWeight * 60))
	}

	experienceBonus := experienceBonusFor(years)
	seniorityBonus := seniorityBonusFor(jobLower, level)

	educationBonus := 0
	if education != "" {
		educationBonus = educationScores[education]
	}

	certificationBonus := len(certifications) * 2
	if certificationBonus > 5 {
		certificationBonus = 5
	}

	raw := skillScore + experienceBonus + seniorityBonus + educationBonus + certificationBonus

	// Never report a perfect or a zero match.
	finalScore := raw
	if finalScore < 25 {
		finalScore = 25
	}
	if finalScore > 95 {
		finalScore = 95
	}

	summary := buildSummary(finalScore, matched, missing, years, level, education, len(certifications))
	emailDraft := buildEmailDraft(finalScore, matched, missing, years)

	strengths := skillNames(matched, 10)
	if len(strengths) == 0 {
		strengths = []string{"Professional experience", "Educational qualifications", "Communication skills"}
	}

	gaps := skillNames(missing, 8)
	if len(gaps) == 0 {
		gaps = []string{"No critical gaps identified"}
	}

	e.logger.Info("keyword analysis complete",
		zap.Int("match_score", finalScore),
		zap.Int("skills_matched", len(matched)),
		zap.Int("skills_total", len(matched)+len(missing)),
		zap.Int("experience_years", years),
		zap.String("seniority", level),
		zap.String("education", education),
		zap.Int("certifications", len(certifications)),
	)

	return &models.MatchAssessment{
		MatchScore:    finalScore,
		KeyStrengths:  strengths,
		MissingSkills: gaps,
		Summary:       summary,
		EmailDraft:    emailDraft,
	}, nil
}

// matchSkills walks the taxonomy in order. A term counts toward
// total_weight when it appears in the job text; it also counts toward
// matched_weight when it appears in the resume text.
func matchSkills(resumeLower, jobLower string) (matched, missing []matchedSkill, matchedWeight, totalWeight float64) {
	for _, category := range Taxonomy {
		label := titleCase(strings.ReplaceAll(category.Name, "_", " "))
		for _, term := range category.Terms {
			if !strings.Contains(jobLower, term) {
				continue
			}
			totalWeight += category.Weight

			entry := matchedSkill{
				Skill:    titleCase(term),
				Category: label,
				Weight:   category.Weight,
			}
			if strings.Contains(resumeLower, term) {
				matched = append(matched, entry)
				matchedWeight += category.Weight
			} else {
				missing = append(missing, entry)
			}
		}
	}
	return matched, missing, matchedWeight, totalWeight
}

func extractExperienceYears(resumeLower string) int {
	for _, pattern := range experiencePatterns {
		if m := pattern.FindStringSubmatch(resumeLower); m != nil {
			years := 0
			fmt.Sscanf(m[1], "%d", &years)
			return years
		}
	}
	return 0
}

func detectSeniority(resumeLower string) string {
	for _, tier := range seniorityTiers {
		for _, keyword := range tier.Keywords {
			if strings.Contains(resumeLower, keyword) {
				return tier.Level
			}
		}
	}
	return "mid"
}

func detectEducation(resumeLower string) string {
	for _, tier := range educationTiers {
		for _, keyword := range tier.Keywords {
			if strings.Contains(resumeLower, keyword) {
				return tier.Level
			}
		}
	}
	return ""
}

func findCertifications(resumeLower string) []string {
	var found []string
	for _, cert := range knownCertifications {
		if strings.Contains(resumeLower, cert) {
			found = append(found, cert)
		}
	}
	return found
}

func experienceBonusFor(years int) int {
	switch {
	case years >= 10:
		return 15
	case years >= 7:
		return 12
	case years >= 5:
		return 10
	case years >= 3:
		return 7
	case years >= 1:
		return 5
	default:
		return 0
	}
}

func seniorityBonusFor(jobLower, level string) int {
	if strings.Contains(jobLower, "senior") || strings.Contains(jobLower, "lead") {
		switch level {
		case "senior":
			return 10
		case "mid":
			return 5
		default:
			return 0
		}
	}
	// No seniority language in the job: flat bonus for any level.
	return 5
}

func buildSummary(score int, matched, missing []matchedSkill, years int, level, education string, certCount int) string {
	assessment, recommendation, _ := scoreBand(score)

	parts := []string{
		fmt.Sprintf("Candidate demonstrates %s alignment with the position requirements (%d%% overall match).", assessment, score),
	}

	if len(matched) > 0 {
		parts = append(parts, fmt.Sprintf("Strong technical capabilities identified in %s.",
			strings.Join(skillNames(matched, 3), ", ")))
	}

	if years > 0 {
		parts = append(parts, fmt.Sprintf("Brings %d+ years of professional experience at the %s level.", years, level))
	}

	if education != "" {
		parts = append(parts, fmt.Sprintf("Educational background includes %s.", educationDisplay[education]))
	}

	if certCount > 0 {
		parts = append(parts, fmt.Sprintf("Holds %d relevant professional certification(s).", certCount))
	}

	if len(missing) > 0 && len(missing) <= 4 {
		parts = append(parts, fmt.Sprintf("Development opportunities exist in %s.",
			strings.Join(skillNames(missing, 3), ", ")))
	}

	parts = append(parts, fmt.Sprintf("Overall assessment: %s.", recommendation))

	return strings.Join(parts, " ")
}

func buildEmailDraft(score int, matched, missing []matchedSkill, years int) string {
	if score >= 65 {
		return buildInviteEmail(score, matched, years)
	}
	return buildDeclineEmail(matched, missing)
}

func buildInviteEmail(score int, matched []matchedSkill, years int) string {
	_, _, fitLevel := scoreBand(score)

	highlights := "relevant technologies"
	if len(matched) > 0 {
		highlights = strings.Join(skillNames(matched, 3), ", ")
	}

	background := "Your background"
	if years > 0 {
		background = fmt.Sprintf("Your %d+ years of experience", years)
	}

	// Interview format and urgency are separate decisions, not one tier
	// lookup: the format wording splits at 75, the scheduling at 80.
	nextStage := "conversation to explore your experience in more detail"
	callType := "phone call"
	if score >= 75 {
		nextStage = "technical discussion with our engineering team"
		callType = "video call"
	}

	timeframe := "in the coming week"
	if score >= 80 {
		timeframe = "this week"
	}

	return fmt.Sprintf(`Dear Candidate,

Thank you for your application for this position. We have completed our initial review of your resume and are impressed with your qualifications.

Your profile demonstrates a %s fit with our requirements (%d%% match), particularly your experience with %s. %s aligns well with what we're looking for in this role.

We would like to invite you to the next stage of our hiring process. This will involve a %s.

Please let us know your availability for a %s %s.

We look forward to speaking with you soon.

Best regards,
Hiring Team
SmartHire Recruiting`, fitLevel, score, highlights, background, nextStage, callType, timeframe)
}

func buildDeclineEmail(matched, missing []matchedSkill) string {
	gapAreas := "certain specialized technologies"
	if len(missing) > 0 {
		gapAreas = strings.Join(skillNames(missing, 3), ", ")
	}

	strengths := "your field"
	if len(matched) > 0 {
		strengths = strings.Join(skillNames(matched, 2), ", ")
	}

	growthAreas := "emerging technologies"
	if len(missing) > 0 {
		growthAreas = strings.Join(skillNames(missing, 2), ", ")
	}

	return fmt.Sprintf(`Dear Candidate,

Thank you for taking the time to apply for this position and for your interest in joining our team.

We appreciate the opportunity to review your application. After careful consideration of all candidates, we have decided to move forward with applicants whose experience more closely aligns with our current specific requirements, particularly in areas such as %s.

We recognize your strengths in %s, and we encourage you to continue developing your expertise in %s.

We will keep your resume on file and encourage you to apply for future positions that may be a better match for your background and career goals.

Thank you again for your interest in our organization. We wish you the very best in your job search and career development.

Best regards,
Hiring Team
SmartHire Recruiting`, gapAreas, strengths, growthAreas)
}

// scoreBand maps a final score to its qualitative label, recommendation
// phrase and fit-level adjective.
func scoreBand(score int) (assessment, recommendation, fitLevel string) {
	switch {
	case score >= 85:
		return "exceptional", "strongly recommended as a top candidate for immediate interview", "excellent"
	case score >= 75:
		return "strong", "highly recommended for interview as a strong match", "very good"
	case score >= 65:
		return "good", "recommended for interview consideration", "good"
	case score >= 50:
		return "moderate", "suitable for further review and evaluation", "moderate"
	default:
		return "limited", "may not fully meet current requirements", "below expectations"
	}
}

func skillNames(skills []matchedSkill, limit int) []string {
	if len(skills) > limit {
		skills = skills[:limit]
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Skill)
	}
	return names
}

// titleCase uppercases the first letter of every word, where a word starts
// after any non-letter rune ("rest api" -> "Rest Api", "next.js" -> "Next.Js").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
