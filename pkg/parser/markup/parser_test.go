//go:build unit

package markup

import (
	"context"
	"testing"

	"github.com/lerenn/sur/pkg/fs/mocks"
	"github.com/lerenn/sur/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const storyboard = `<?xml version="1.0" encoding="UTF-8"?>
<document type="com.apple.InterfaceBuilder3.CocoaTouch.Storyboard.XIB" version="3.0">
    <scenes>
        <scene sceneID="1">
            <objects>
                <imageView image="logo" highlightedImage="logo_highlighted" id="a"/>
                <button id="b">
                    <state key="normal" image="play" backgroundImage="button_bg"/>
                    <state key="selected" selectedImage="play_selected"/>
                    <state key="disabled" disabledImage="play_disabled"/>
                    <color key="titleColor" name="brand"/>
                </button>
                <imageView image="" id="c"/>
            </objects>
        </scene>
    </scenes>
    <resources>
        <image name="logo" width="24" height="24"/>
        <image name="star.fill" catalog="system" width="24" height="24"/>
        <namedColor name="accent">
            <color red="1" green="0" blue="0" alpha="1" colorSpace="custom"/>
        </namedColor>
        <systemColor name="systemBackgroundColor">
            <color white="1" alpha="1" colorSpace="custom"/>
        </systemColor>
    </resources>
</document>`

func TestParser_Parse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	mockFS.EXPECT().ReadFile("/app/Main.storyboard").Return([]byte(storyboard), nil)

	p := NewParser(NewParserParams{FS: mockFS})
	usages, err := p.Parse(context.Background(), "/app/Main.storyboard")
	require.NoError(t, err)

	assert.Equal(t, []resource.Usage{
		resource.Literal(resource.KindImage, "logo"),
		resource.Literal(resource.KindImage, "logo_highlighted"),
		resource.Literal(resource.KindImage, "play"),
		resource.Literal(resource.KindImage, "button_bg"),
		resource.Literal(resource.KindImage, "play_selected"),
		resource.Literal(resource.KindImage, "play_disabled"),
		resource.Literal(resource.KindColor, "brand"),
		resource.Literal(resource.KindImage, "logo"),
		resource.Literal(resource.KindColor, "accent"),
	}, usages)
}

func TestParser_Parse_FiltersKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	mockFS.EXPECT().ReadFile("/app/Main.storyboard").Return([]byte(storyboard), nil)

	p := NewParser(NewParserParams{FS: mockFS, Kinds: []resource.Kind{resource.KindColor}})
	usages, err := p.Parse(context.Background(), "/app/Main.storyboard")
	require.NoError(t, err)

	assert.Equal(t, []resource.Usage{
		resource.Literal(resource.KindColor, "brand"),
		resource.Literal(resource.KindColor, "accent"),
	}, usages)
}

func TestParser_Parse_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	mockFS.EXPECT().ReadFile("/app/Broken.xib").Return([]byte(`<document><view image="logo"></document>`), nil)

	p := NewParser(NewParserParams{FS: mockFS})
	_, err := p.Parse(context.Background(), "/app/Broken.xib")
	assert.ErrorIs(t, err, ErrMalformedMarkup)
}
