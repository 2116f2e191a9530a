package advice

import (
	"fmt"
	"strings"
)

const adviceSystemPrompt = `You are an expert ADHD coach with extensive knowledge about different ADHD types, symptoms, and management strategies.`

const (
	connectionTestSystemPrompt = `You are a helpful assistant.`
	connectionTestUserMessage  = `Provide 3 quick tips for managing ADHD symptoms.`
)

func buildAdviceUserMessage(p Profile, ct ContentType) string {
	var b strings.Builder

	b.WriteString("I need personalized ADHD management tips for a person with the following profile:\n\n")
	writeProfile(&b, p)

	fmt.Fprintf(&b, "\nBased on this profile, please provide 3-5 %s.\n", ct.Instruction())

	b.WriteString(`
Format your response in markdown with bullet points for each tip.
Keep your response concise but specific and actionable.
Each tip should directly address their profile and challenges.
Do not include any introductory text, just start with the bullet points.`)

	return b.String()
}

func buildPlanUserMessage(p Profile) string {
	var b strings.Builder
	b.WriteString("Build a one-day action plan for a person with the following ADHD profile:\n\n")
	writeProfile(&b, p)
	b.WriteString(`
Give 3-5 small steps, each doable in under two hours, ordered through the day.
Target their primary challenges first. Reply with JSON only.`)
	return b.String()
}

func writeProfile(b *strings.Builder, p Profile) {
	if p.ADHDType != "" {
		fmt.Fprintf(b, "They have %s type ADHD.\n", p.ADHDType)
	}
	fmt.Fprintf(b, "Their focus score is %d/10.\n", p.FocusScore)
	fmt.Fprintf(b, "Their organization score is %d/10.\n", p.OrganizationScore)
	if p.MotivationLevel != "" {
		fmt.Fprintf(b, "Their motivation level is %s.\n", strings.ToLower(p.MotivationLevel))
	}
	if len(p.PrimaryChallenges) > 0 {
		fmt.Fprintf(b, "Their primary challenges are: %s.\n", strings.Join(p.PrimaryChallenges, ", "))
	} else {
		b.WriteString("They have general ADHD challenges.\n")
	}
}
