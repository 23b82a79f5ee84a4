// Package transcript extracts a human-readable reply from the raw dispatch
// transcript the Nimbus backend returns. The transcript format is owned by
// the backend and only loosely structured, so this is a best-effort heuristic
// rather than a parser; unknown content is treated as reply content, never
// dropped.
package transcript

import (
	"regexp"
	"strings"
)

// textBlockPattern matches the quoted segment of a textual content block,
// e.g. TextBlock(text="Hello there"). First match wins.
var textBlockPattern = regexp.MustCompile(`TextBlock\(text="((?:[^"\\]|\\.)*)"`)

// markerPrefixes are the known non-content line markers in a transcript.
// Lines starting with one of these carry turn structure, not reply text.
var markerPrefixes = []string{
	"[turn",
	"[step",
	"[thought",
	"[tool_call",
	"[tool_result",
	"[status",
	"[turn_end",
}

// rawFallbackLimit caps the raw-trace fallback when no content is found.
const rawFallbackLimit = 500

// unescaper undoes the escaping inside a quoted text block.
var unescaper = strings.NewReplacer(`\"`, `"`, `\n`, "\n", `\t`, "\t", `\\`, `\`)

// ExtractReply pulls the reply text out of a raw transcript. It tries, in
// order: the quoted segment of the first text block; the concatenation of all
// lines that do not start with a known marker prefix; the first
// rawFallbackLimit characters of the raw transcript. It always returns a
// string and never fails.
func ExtractReply(raw string) string {
	if m := textBlockPattern.FindStringSubmatch(raw); m != nil {
		return unescaper.Replace(m[1])
	}

	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		if isMarkerLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	if reply := strings.TrimSpace(strings.Join(kept, "\n")); reply != "" {
		return reply
	}

	runes := []rune(raw)
	if len(runes) > rawFallbackLimit {
		runes = runes[:rawFallbackLimit]
	}
	return string(runes)
}

func isMarkerLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range markerPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
