package content

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/dist"
)

// TemplateProvider fills catalog templates with no external calls. Output
// is a pure function of the request, so seeded runs reproduce it exactly,
// and concurrent use needs no locking.
type TemplateProvider struct{}

// NewTemplateProvider returns the template-backed provider.
func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{}
}

// Name implements Provider.
func (p *TemplateProvider) Name() string { return "template" }

// Generate implements Provider. It never fails.
func (p *TemplateProvider) Generate(_ context.Context, req Request) (string, error) {
	rng := requestRand(req)

	switch req.Kind {
	case KindDescription:
		return p.description(rng, req), nil
	case KindComment:
		return p.comment(rng), nil
	default:
		return p.taskName(rng, req), nil
	}
}

func (p *TemplateProvider) taskName(rng *rand.Rand, req Request) string {
	family := req.Context[CtxFamily]
	templates, ok := catalog.TaskTemplates[family]
	if !ok {
		family = catalog.FamilyEngineering
		templates = catalog.TaskTemplates[family]
	}
	return substitute(rng, dist.Pick(rng, templates), catalog.Substitutions[family])
}

func (p *TemplateProvider) description(rng *rand.Rand, req Request) string {
	taskName := req.Context[CtxTaskName]
	projectName := req.Context[CtxProjectName]

	switch req.Context[CtxLength] {
	case LengthMinimal:
		return "Work on " + taskName + "."
	case LengthDetailed:
		return "Complete " + taskName + " with the following criteria:\n" +
			"- Ensure quality standards\n" +
			"- Document the process\n" +
			"- Get team review\n" +
			"- Update project tracking"
	default:
		return "Complete " + taskName + " according to project requirements. This task is part of " + projectName + "."
	}
}

func (p *TemplateProvider) comment(rng *rand.Rand) string {
	return substitute(rng, dist.Pick(rng, catalog.CommentTemplates), catalog.CommentSubstitutions)
}

// substitute fills placeholders in sorted order so the draw sequence is
// stable for a given rng state.
func substitute(rng *rand.Rand, template string, subs map[string][]string) string {
	placeholders := make([]string, 0, len(subs))
	for p := range subs {
		placeholders = append(placeholders, p)
	}
	sort.Strings(placeholders)

	result := template
	for _, placeholder := range placeholders {
		if strings.Contains(result, placeholder) {
			result = strings.ReplaceAll(result, placeholder, dist.Pick(rng, subs[placeholder]))
		}
	}
	return result
}

// requestRand derives a generator from the request so repeated requests for
// the same entity produce the same text.
func requestRand(req Request) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(req.Kind))

	keys := make([]string, 0, len(req.Context))
	for k := range req.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(req.Context[k]))
		h.Write([]byte{0})
	}

	return rand.New(rand.NewPCG(h.Sum64(), 0x9E3779B97F4A7C15))
}
