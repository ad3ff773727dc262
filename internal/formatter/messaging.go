package formatter

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/festpass/festpass/internal/domain"
)

const (
	// MAX_MESSAGING_RUNES is the hard text cap of the messaging channel.
	MAX_MESSAGING_RUNES = 4096
	// MAX_MESSAGING_ENTITIES caps how many entities one message presents.
	MAX_MESSAGING_ENTITIES = 5
)

var imageKeys = []string{"image_url", "imageUrl", "image"}

// buildMessagingResponse renders a messaging-channel message: a capped text
// body plus at most one image with caption per entity that has one. Entities
// without an image are summarized in the text body instead.
func buildMessagingResponse(answer string, items []map[string]any) (string, []domain.MediaItem) {
	entities := items
	if len(entities) > MAX_MESSAGING_ENTITIES {
		entities = entities[:MAX_MESSAGING_ENTITIES]
	}

	var media []domain.MediaItem
	var lines []string
	for _, entity := range entities {
		caption := entityCaption(entity)
		if imageURL := entityImageURL(entity); imageURL != "" {
			media = append(media, domain.MediaItem{
				Type:    "image",
				URL:     imageURL,
				Caption: caption,
			})
			continue
		}
		if caption != "" {
			lines = append(lines, "• "+caption)
		}
	}

	var sb strings.Builder
	sb.WriteString(answer)
	if len(lines) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(strings.Join(lines, "\n"))
	}
	if len(items) > len(entities) {
		sb.WriteString(fmt.Sprintf("\n\nAnd %d more. Ask me for the rest!", len(items)-len(entities)))
	}

	return capRunes(sb.String(), MAX_MESSAGING_RUNES), media
}

// capRunes trims text to at most limit runes, ending with an ellipsis when a
// cut happened.
func capRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

// entityCaption builds the one-line text for an entity: its name plus any
// date and venue details it carries.
func entityCaption(entity map[string]any) string {
	var parts []string
	if name, ok := entity["name"].(string); ok && name != "" {
		parts = append(parts, name)
	}
	if date := entityDate(entity); date != "" {
		parts = append(parts, date)
	}
	if venue, ok := entity["venue"].(string); ok && venue != "" {
		if city, ok := entity["city"].(string); ok && city != "" {
			venue += ", " + city
		}
		parts = append(parts, venue)
	}
	if price := entityPrice(entity); price != "" {
		parts = append(parts, price)
	}
	return strings.Join(parts, " - ")
}

// entityDate renders the entity date in a friendly format, parsing whatever
// shape the payload carries.
func entityDate(entity map[string]any) string {
	for _, key := range []string{"starts_at", "startsAt", "date"} {
		raw, ok := entity[key].(string)
		if !ok || raw == "" {
			continue
		}
		parsed, err := dateparse.ParseAny(raw)
		if err != nil {
			return raw
		}
		return parsed.Format("Mon, 02 Jan 2006 15:04")
	}
	return ""
}

func entityPrice(entity map[string]any) string {
	price, ok := entity["price"].(float64)
	if !ok {
		return ""
	}
	currency, _ := entity["currency"].(string)
	if currency == "" {
		return fmt.Sprintf("%.2f", price)
	}
	return fmt.Sprintf("%s %.2f", currency, price)
}

func entityImageURL(entity map[string]any) string {
	for _, key := range imageKeys {
		if value, ok := entity[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
