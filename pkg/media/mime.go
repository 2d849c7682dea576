package media

import "strings"

type mimeRule struct {
	substr string
	mime   string
}

// Scanned in order: images before audio before documents, first match wins.
// ".jpg" is listed before ".jpeg" only for readability; ".jpg" matches both.
var mimeRules = []mimeRule{
	{".png", "image/png"},
	{".jpg", "image/jpeg"},
	{".jpeg", "image/jpeg"},
	{".gif", "image/gif"},
	{".webp", "image/webp"},
	{".mp3", "audio/mp3"},
	{".ogg", "audio/ogg"},
	{".oga", "audio/ogg"},
	{".wav", "audio/wav"},
	{".m4a", "audio/mp4"},
	{".aac", "audio/aac"},
	{".pdf", "application/pdf"},
	{".doc", "application/msword"},
	{".xls", "application/vnd.ms-excel"},
}

// ClassifyMime infers a MIME type from the URL's extension. Unrecognized URLs
// fall back to a type-family default chosen by typeHint; this never fails.
func ClassifyMime(mediaURL, typeHint string) string {
	lowerURL := strings.ToLower(mediaURL)

	for _, rule := range mimeRules {
		if strings.Contains(lowerURL, rule.substr) {
			return rule.mime
		}
	}

	if typeHint == "audio" {
		return "audio/mp3"
	}
	return "image/jpeg"
}
