package services

import "fmt"

// Prompt builders for the five generation stages. Each stage's prompt embeds
// the verbatim output of the stage(s) before it; the provider only ever sees
// text in and text out.

func catalogStructuringPrompt(catalogJSON string) string {
	return fmt.Sprintf(`You are a university course catalog analyst.
Below is a raw course catalog as JSON. Restructure it into a queryable
representation: group courses by department, and for each course list its
code, title, credits, prerequisites, corequisites and attribute tags in a
consistent, easy-to-reference layout.

Catalog JSON:
%s`, catalogJSON)
}

func requirementAnalysisPrompt(structuredCatalog string) string {
	return fmt.Sprintf(`You are a degree requirements analyst.
Using the structured course catalog below, derive:
- the compulsory courses every student must take
- a mapping from attribute tags to the requirements they satisfy
- the prerequisite and corequisite relationships between courses
- the minimum total credits needed to graduate

Structured catalog:
%s`, structuredCatalog)
}

func specializationRankingPrompt(structuredCatalog, preference string) string {
	return fmt.Sprintf(`You are an academic advisor.
A student's stated interest is: %q

Using the structured course catalog below, rank the courses most relevant to
that interest and propose the order in which the student should take them,
respecting prerequisites.

Structured catalog:
%s`, preference, structuredCatalog)
}

func scheduleSynthesisPrompt(structuredCatalog, requirements, ranking, preference string) string {
	return fmt.Sprintf(`You are building a four-year course schedule for a student interested in %q.
Produce an 8-semester plan with 16-20 credits per semester. Every
prerequisite must be scheduled before the course that requires it, and all
compulsory requirements must be covered.

Structured catalog:
%s

Requirement analysis:
%s

Recommended specialization sequence:
%s`, preference, structuredCatalog, requirements, ranking)
}

func presentationPrompt(draftSchedule string) string {
	return fmt.Sprintf(`Reformat the draft schedule below into a final answer.
The answer MUST contain the schedule encoded as a JSON array inside a fenced
code block tagged json, shaped exactly like:

`+"```json"+`
[{"year": 1, "semesters": [{"name": "Fall", "courses": [{"code": "CS 101", "title": "Intro", "credits": 4}]}]}]
`+"```"+`

Years are numbered 1 to 4 and semester names cycle Fall, Spring, Summer 1,
Summer 2. Place at most 5 courses in any semester and never repeat a course
code.

Draft schedule:
%s`, draftSchedule)
}
