package indexer

import (
	"strings"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/social/jobs"
	"github.com/quantum5ocial/server/social/orgs"
	"github.com/quantum5ocial/server/social/products"
	"github.com/quantum5ocial/server/social/profiles"
	"github.com/quantum5ocial/server/social/questions"
)

// fallback when a job posting carries no location
const defaultJobLocation = "Remote"

// renders the canonical text blob for a job posting
func renderJob(job jobs.Job) renderedDocument {
	location := job.Location
	if location == "" {
		location = defaultJobLocation
	}

	content := joinLabeled(
		labeled{"Job Title", job.Title},
		labeled{"Company", job.OrgName},
		labeled{"Location", location},
		labeled{"Type", job.Type},
		labeled{"Description", job.Description},
	)

	return renderedDocument{
		Type:    docstore.TypeJob,
		Link:    job.ID,
		Title:   job.Title,
		Content: content,
	}
}

// renders the canonical text blob for a marketplace product
func renderProduct(product products.Product) renderedDocument {
	content := joinLabeled(
		labeled{"Product", product.Name},
		labeled{"Company", product.CompanyName},
		labeled{"Category", product.Category},
		labeled{"Description", product.ShortDescription},
	)

	return renderedDocument{
		Type:    docstore.TypeProduct,
		Link:    product.ID,
		Title:   product.Name,
		Content: content,
	}
}

// renders the canonical text blob for an organization page
//
// Organizations link by slug rather than row id, so the slug is the dedup key.
func renderOrg(org orgs.Organization) renderedDocument {
	content := joinLabeled(
		labeled{"Organization", org.Name},
		labeled{"Industry", org.Industry},
		labeled{"Focus Areas", org.FocusAreas},
		labeled{"Description", org.Description},
	)

	return renderedDocument{
		Type:    docstore.TypeOrganization,
		Link:    org.Slug,
		Title:   org.Name,
		Content: content,
	}
}

// renders the canonical text blob for a user profile
//
// A profile without a full name is not indexable; the second return value
// reports whether the render produced a usable document.
func renderProfile(profile profiles.Profile) (renderedDocument, bool) {
	if strings.TrimSpace(profile.FullName) == "" {
		return renderedDocument{}, false
	}

	content := joinLabeled(
		labeled{"Name", profile.FullName},
		labeled{"Role", profile.Role},
		labeled{"Affiliation", profile.Affiliation},
		labeled{"Bio", profile.ShortBio},
	)

	return renderedDocument{
		Type:    docstore.TypeProfile,
		Link:    profile.ID,
		Title:   profile.FullName,
		Content: content,
	}, true
}

// renders the canonical text blob for a forum question
func renderQuestion(question questions.Question) renderedDocument {
	content := joinLabeled(
		labeled{"Question", question.Title},
		labeled{"Details", question.Body},
		labeled{"Tags", strings.Join(question.Tags, ", ")},
	)

	return renderedDocument{
		Type:    docstore.TypeQuestion,
		Link:    question.ID,
		Title:   question.Title,
		Content: content,
	}
}

type labeled struct {
	label string
	value string
}

// concatenates labeled fields into one blob, dropping empty values and
// flattening newlines to spaces so the embedding input is a single line
func joinLabeled(fields ...labeled) string {
	parts := make([]string, 0, len(fields))

	for _, f := range fields {
		value := flattenWhitespace(f.value)
		if value == "" {
			continue
		}

		parts = append(parts, f.label+": "+value)
	}

	return strings.Join(parts, ". ")
}

// collapses newlines and runs of whitespace into single spaces
func flattenWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
