package strutil

import "github.com/indigo-web/utils/strcomp"

// IndexFold returns the index of the first ASCII case-insensitive occurrence of substr
// in str, or -1 if there's none.
func IndexFold(str, substr string) int {
	for i := 0; i+len(substr) <= len(str); i++ {
		if strcomp.EqualFold(str[i:i+len(substr)], substr) {
			return i
		}
	}

	return -1
}

func ContainsFold(str, substr string) bool {
	return IndexFold(str, substr) != -1
}
