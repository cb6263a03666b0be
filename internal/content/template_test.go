package content

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/taskseed/internal/catalog"
)

func TestTemplateProviderTaskName(t *testing.T) {
	p := NewTemplateProvider()
	ctx := context.Background()

	t.Run("no placeholders survive substitution", func(t *testing.T) {
		for _, family := range []string{catalog.FamilyEngineering, catalog.FamilyMarketing, catalog.FamilyOperations} {
			for i := 0; i < 50; i++ {
				name, err := p.Generate(ctx, Request{
					Kind: KindTaskName,
					Context: map[string]string{
						CtxFamily:   family,
						CtxEntityID: family + "-" + strings.Repeat("x", i%7),
					},
				})
				require.NoError(t, err)
				require.NotContains(t, name, "[", "family %s produced %q", family, name)
			}
		}
	})

	t.Run("same request yields same text", func(t *testing.T) {
		req := Request{
			Kind:    KindTaskName,
			Context: map[string]string{CtxFamily: catalog.FamilyEngineering, CtxEntityID: "task_abc"},
		}
		first, err := p.Generate(ctx, req)
		require.NoError(t, err)
		second, err := p.Generate(ctx, req)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("different entities vary", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 40; i++ {
			name, err := p.Generate(ctx, Request{
				Kind: KindTaskName,
				Context: map[string]string{
					CtxFamily:   catalog.FamilyEngineering,
					CtxEntityID: string(rune('a' + i)),
				},
			})
			require.NoError(t, err)
			seen[name] = true
		}
		require.Greater(t, len(seen), 5)
	})
}

func TestTemplateProviderDescription(t *testing.T) {
	p := NewTemplateProvider()
	ctx := context.Background()

	tests := []struct {
		length string
		want   string
	}{
		{LengthMinimal, "Work on Implement caching layer."},
		{LengthMedium, "Complete Implement caching layer according to project requirements. This task is part of API v2 Migration."},
	}
	for _, tt := range tests {
		t.Run(tt.length, func(t *testing.T) {
			desc, err := p.Generate(ctx, Request{
				Kind: KindDescription,
				Context: map[string]string{
					CtxLength:      tt.length,
					CtxTaskName:    "Implement caching layer",
					CtxProjectName: "API v2 Migration",
				},
			})
			require.NoError(t, err)
			require.Equal(t, tt.want, desc)
		})
	}

	t.Run("detailed has bullet criteria", func(t *testing.T) {
		desc, err := p.Generate(ctx, Request{
			Kind: KindDescription,
			Context: map[string]string{
				CtxLength:   LengthDetailed,
				CtxTaskName: "Implement caching layer",
			},
		})
		require.NoError(t, err)
		require.Contains(t, desc, "\n- ")
	})
}

func TestTemplateProviderComment(t *testing.T) {
	p := NewTemplateProvider()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		text, err := p.Generate(ctx, Request{
			Kind:    KindComment,
			Context: map[string]string{CtxEntityID: strings.Repeat("c", i%11+1)},
		})
		require.NoError(t, err)
		require.NotEmpty(t, text)
		require.NotContains(t, text, "[blocker]")
		require.NotContains(t, text, "[component]")
		require.NotContains(t, text, "[person]")
	}
}
