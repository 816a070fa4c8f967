package entity

// UsernameMapping links a username to the content address of the profile version
// it currently points at. Mappings are persisted separately from profiles so a
// username can be resolved without a search index.
type UsernameMapping struct {
	Username       string `json:"username"`
	ContentAddress string `json:"transactionId"`
	Timestamp      int64  `json:"timestamp"` // epoch millis
}

// Tag is a name/value metadata pair attached to a persisted record.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Tags is an ordered tag list.
type Tags []Tag

// Get returns the value of the first tag called name.
func (t Tags) Get(name string) (string, bool) {
	for _, tag := range t {
		if tag.Name == name {
			return tag.Value, true
		}
	}

	return "", false
}
