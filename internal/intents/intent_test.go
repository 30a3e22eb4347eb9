package intents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTel(t *testing.T) {
	assert.Equal(t, "tel:555", Tel("555").URI)
}

func TestSMS_WithRecipient(t *testing.T) {
	i := SMS("555", "please help")
	assert.Equal(t, "sms:555?body=please%20help", i.URI)
}

func TestSMS_NoRecipient(t *testing.T) {
	i := SMS("", "hi")
	assert.Equal(t, "sms:?body=hi", i.URI)
}

func TestSMS_EncodesReservedCharacters(t *testing.T) {
	i := SMS("555", "a&b=c\nd")
	assert.False(t, strings.ContainsAny(strings.TrimPrefix(i.URI, "sms:555?body="), "&=\n "))
	assert.Contains(t, i.URI, "%0A")
}

func TestMapURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=10,20",
		MapURL("10", "20"))
}

func TestMapURL_UnknownPlaceholders(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=-,-",
		MapURL("-", "-"))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Dispatch(context.Background(), Tel("100"))
	r.Dispatch(context.Background(), Tel("102"))
	assert.Equal(t, []Intent{{URI: "tel:100"}, {URI: "tel:102"}}, r.Intents)
}
