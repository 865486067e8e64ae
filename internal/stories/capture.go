package stories

import (
	"fmt"

	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
)

const sampleTranscript = `Vintage brass compass, looks nautical, has some patina, maker's mark on back says "Made in England", diameter about 3 inches, works perfectly`

type captureScreen struct {
	photos     int
	transcript string
	helptext   string
	mobile     bool
}

func capture(lib *components.Library) declaration {
	screen := func(s captureScreen) story.RenderFunc {
		return func() (components.Fragment, error) {
			return capturePage(lib, s)
		}
	}
	return declaration{
		group: story.Group{
			Title:       "Pages/Capture",
			Tags:        autodocs(),
			Description: "Item capture screen: photo picker, voice transcript notes and actions.",
		},
		variants: []story.Variant{
			explicit("CapturePage", screen(captureScreen{
				helptext: "Upload up to 20 images. Click existing images to remove.",
			})),
			explicit("CapturePageWithImages", screen(captureScreen{
				photos:     3,
				transcript: sampleTranscript,
				helptext:   "Upload up to 20 images. Click × to remove images.",
			})),
			explicit("CapturePageMobile", screen(captureScreen{photos: 2, mobile: true})),
		},
	}
}

func capturePage(lib *components.Library, s captureScreen) (components.Fragment, error) {
	photos := make([]string, s.photos)
	for i := range photos {
		photos[i] = fmt.Sprintf("photo-%d", i+1)
	}

	grid, err := lib.PhotoGrid(components.PhotoGridProps{
		Photos:   photos,
		Compact:  s.mobile,
		Upload:   components.ButtonProps{Variant: "secondary", Label: "Add Photos", Block: s.mobile},
		Helptext: s.helptext,
	})
	if err != nil {
		return "", err
	}

	notes := components.FormGroupProps{
		ID:          "voice-transcript",
		Label:       "Notes / Voice Transcript",
		Textarea:    true,
		Rows:        6,
		Placeholder: "Describe the item... or use voice input",
		MinHeight:   "textarea-min",
		Value:       s.transcript,
		Helptext:    "Auto-saves as you type. Speak naturally - AI will process later.",
	}
	if s.mobile {
		notes.Label = "Notes"
		notes.Rows = 4
		notes.Placeholder = "Describe the item..."
		notes.MinHeight = "textarea-sm"
		notes.Helptext = ""
	}
	group, err := lib.FormGroup(notes)
	if err != nil {
		return "", err
	}

	actions, err := lib.ActionBar(components.ActionBarProps{
		Buttons: []components.ButtonProps{
			{Variant: "primary", Label: "Next Item", Block: s.mobile},
			{Variant: "secondary", Label: "Save & Exit", Block: s.mobile},
		},
		Stacked: s.mobile,
	})
	if err != nil {
		return "", err
	}

	card, err := lib.Card(components.CardProps{Title: "Capture Item", Content: join(grid, group, actions)})
	if err != nil {
		return "", err
	}

	labels := []string{"Home", "Capture", "Items", "Logout"}
	page := components.PageProps{Nav: components.NavLinks("Capture", labels...), Content: card.HTML()}
	if s.mobile {
		page.Nav = components.NavLinks("Capture", labels[:3]...)
		page.Width = "width-mobile"
	}
	return lib.Page(page)
}
