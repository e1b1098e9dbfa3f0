package cache

import "testing"

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewRunCache()

	key := Key("See 1 F.2d 2.")
	if _, found := c.Get(key); found {
		t.Fatal("Expected miss before Set")
	}

	c.Set(key, []string{"1 F.2d 2"})

	matches, found := c.Get(key)
	if !found {
		t.Fatal("Expected hit after Set")
	}
	if len(matches) != 1 || matches[0] != "1 F.2d 2" {
		t.Errorf("Expected stored matches back, got %v", matches)
	}

	c.Clear()
	if _, found := c.Get(key); found {
		t.Error("Expected miss after Clear")
	}
}

func TestKey_ContentSensitive(t *testing.T) {
	if Key("a") == Key("b") {
		t.Error("Expected different content to produce different keys")
	}
	if Key("same") != Key("same") {
		t.Error("Expected identical content to produce identical keys")
	}
}
