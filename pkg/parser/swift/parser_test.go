//go:build unit

package swift

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/sur/pkg/fs/mocks"
	"github.com/lerenn/sur/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func parseSource(t *testing.T, source string, kinds ...resource.Kind) []resource.Usage {
	t.Helper()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	mockFS.EXPECT().ReadFile("/app/View.swift").Return([]byte(source), nil)

	p := NewParser(NewParserParams{FS: mockFS, Kinds: kinds})
	usages, err := p.Parse(context.Background(), "/app/View.swift")
	require.NoError(t, err)
	return usages
}

func TestParser_Parse_Literals(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []resource.Usage
	}{
		{
			name:     "UIImage named",
			source:   `let v = UIImage(named: "logo")`,
			expected: []resource.Usage{resource.Literal(resource.KindImage, "logo")},
		},
		{
			name:     "NSImage named",
			source:   `NSImage(named:"logo")`,
			expected: []resource.Usage{resource.Literal(resource.KindImage, "logo")},
		},
		{
			name:     "SwiftUI image",
			source:   `Image("hero")`,
			expected: []resource.Usage{resource.Literal(resource.KindImage, "hero")},
		},
		{
			name:     "decorative image",
			source:   `Image(decorative: "background")`,
			expected: []resource.Usage{resource.Literal(resource.KindImage, "background")},
		},
		{
			name:     "texture",
			source:   `SKTexture(imageNamed: "sprite")`,
			expected: []resource.Usage{resource.Literal(resource.KindImage, "sprite")},
		},
		{
			name:     "image literal",
			source:   `#imageLiteral(resourceName: "star")`,
			expected: []resource.Usage{resource.Literal(resource.KindImage, "star")},
		},
		{
			name:     "UIColor named",
			source:   `UIColor(named: "brand")`,
			expected: []resource.Usage{resource.Literal(resource.KindColor, "brand")},
		},
		{
			name:     "SwiftUI color",
			source:   `Color("accent")`,
			expected: []resource.Usage{resource.Literal(resource.KindColor, "accent")},
		},
		{
			name:     "system image is not a resource",
			source:   `Image(systemName: "star")`,
			expected: nil,
		},
		{
			name:     "interpolation becomes a regex",
			source:   `UIImage(named: "tab_\(index)")`,
			expected: []resource.Usage{resource.Regex(resource.KindImage, `tab_.*`)},
		},
		{
			name:     "static parts are quoted",
			source:   `UIImage(named: "icon.\(size(of: item))x")`,
			expected: []resource.Usage{resource.Regex(resource.KindImage, `icon\..*x`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseSource(t, tt.source))
		})
	}
}

func TestParser_Parse_Identifiers(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []resource.Usage
	}{
		{
			name:     "legacy image",
			source:   `R.image.primaryButton()`,
			expected: []resource.Usage{resource.LegacyIdentifier(resource.KindImage, "primaryButton")},
		},
		{
			name:     "legacy color with keyword",
			source:   "R.color.`default`()",
			expected: []resource.Usage{resource.LegacyIdentifier(resource.KindColor, "`default`")},
		},
		{
			name:     "image resource",
			source:   `let r = ImageResource.logo`,
			expected: []resource.Usage{resource.ModernIdentifier(resource.KindImage, "logo")},
		},
		{
			name:     "UIImage resource",
			source:   `UIImage(resource: .primaryButtonImage)`,
			expected: []resource.Usage{resource.ModernIdentifier(resource.KindImage, "primaryButtonImage")},
		},
		{
			name:     "SwiftUI image resource",
			source:   `Image(.hero)`,
			expected: []resource.Usage{resource.ModernIdentifier(resource.KindImage, "hero")},
		},
		{
			name:     "color resource",
			source:   `ColorResource.brand`,
			expected: []resource.Usage{resource.ModernIdentifier(resource.KindColor, "brand")},
		},
		{
			name:     "NSColor resource",
			source:   `NSColor(resource: .accent)`,
			expected: []resource.Usage{resource.ModernIdentifier(resource.KindColor, "accent")},
		},
		{
			name:     "SwiftUI color resource",
			source:   `Color(.accent)`,
			expected: []resource.Usage{resource.ModernIdentifier(resource.KindColor, "accent")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseSource(t, tt.source))
		})
	}
}

func TestParser_Parse_IgnoresComments(t *testing.T) {
	source := `
// UIImage(named: "commented")
/* Image("block") /* nested */ Color("still") */
let url = "https://example.com" // Image("trailing")
let a = UIImage(named: "kept")
`
	assert.Equal(t, []resource.Usage{resource.Literal(resource.KindImage, "kept")}, parseSource(t, source))
}

func TestParser_Parse_FiltersKinds(t *testing.T) {
	source := `
UIImage(named: "logo")
UIColor(named: "brand")
`
	assert.Equal(t,
		[]resource.Usage{resource.Literal(resource.KindColor, "brand")},
		parseSource(t, source, resource.KindColor))
}

func TestParser_Parse_InvalidUTF8(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	mockFS.EXPECT().ReadFile("/app/View.swift").Return([]byte{0xff, 0xfe, 'a'}, nil)

	p := NewParser(NewParserParams{FS: mockFS})
	_, err := p.Parse(context.Background(), "/app/View.swift")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestParser_Parse_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	mockFS.EXPECT().ReadFile("/app/View.swift").Return(nil, errors.New("permission denied"))

	p := NewParser(NewParserParams{FS: mockFS})
	_, err := p.Parse(context.Background(), "/app/View.swift")
	assert.ErrorIs(t, err, ErrReadSource)
}

func TestParser_Parse_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewParser(NewParserParams{FS: mocks.NewMockFS(gomock.NewController(t))})
	_, err := p.Parse(ctx, "/app/View.swift")
	assert.ErrorIs(t, err, context.Canceled)
}
