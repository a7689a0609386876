package models

// MessageType categorizes the kind of textual source an article's study
// concerns. The set is closed; values are stored as-is and mapped to display
// labels for the filter controls.
type MessageType string

const (
	MessageTypeAll           MessageType = "All" // filter sentinel, never stored on an article
	MessageTypeBlogs         MessageType = "Blogs+lettres+guides"
	MessageTypeTweets        MessageType = "Tweets"
	MessageTypeConversations MessageType = "Conversations"
	MessageTypeReddit        MessageType = "Commentaires Reddit"
	MessageTypeStories       MessageType = "Histoires"
)

var messageTypeLabels = map[MessageType]string{
	MessageTypeAll:           "All",
	MessageTypeBlogs:         "Blogs/Letters/Guides",
	MessageTypeTweets:        "Tweets",
	MessageTypeConversations: "Conversations",
	MessageTypeReddit:        "Reddit Comments",
	MessageTypeStories:       "Stories",
}

// MessageTypes returns the storable categories, without the All sentinel.
func MessageTypes() []MessageType {
	return []MessageType{
		MessageTypeBlogs,
		MessageTypeTweets,
		MessageTypeConversations,
		MessageTypeReddit,
		MessageTypeStories,
	}
}

// Valid reports whether m is a storable category.
func (m MessageType) Valid() bool {
	_, ok := messageTypeLabels[m]
	return ok && m != MessageTypeAll
}

// Label returns the display label for m, falling back to the raw value.
func (m MessageType) Label() string {
	if label, ok := messageTypeLabels[m]; ok {
		return label
	}
	return string(m)
}

// MessageTypeOption is a value/label pair for populating a filter control.
type MessageTypeOption struct {
	Value MessageType `json:"value"`
	Label string      `json:"label"`
}
