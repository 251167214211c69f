package vocab

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryCensor(t *testing.T) {
	d := NewDictionary()
	for _, w := range []string{"fuck", "shit", "ass", "dumbass"} {
		require.NoError(t, d.Set(w, Profane|Moderate))
	}

	tcs := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty input",
			input:  "",
			expect: "",
		},
		{
			name:   "clean text passes through",
			input:  "hello world",
			expect: "hello world",
		},
		{
			name:   "masks a word keeping the first rune",
			input:  "fuck",
			expect: "f***",
		},
		{
			name:   "masks mid-sentence",
			input:  "well shit happens",
			expect: "well s*** happens",
		},
		{
			name:   "masks repeated words",
			input:  "fuck fuck",
			expect: "f*** f***",
		},
		{
			name:   "prefers the longest entry",
			input:  "what a dumbass move",
			expect: "what a d****** move",
		},
		{
			name:   "ignores embedded substrings",
			input:  "classic bass pass",
			expect: "classic bass pass",
		},
		{
			name:   "case insensitive",
			input:  "FUCK Shit",
			expect: "F*** S***",
		},
		{
			name:   "diacritic folding",
			input:  "fück",
			expect: "f***",
		},
		{
			name:   "leet digits",
			input:  "sh1t",
			expect: "s***",
		},
		{
			name:   "leet symbol keeps the original first rune",
			input:  "$hit",
			expect: "$***",
		},
		{
			name:   "punctuation is a boundary",
			input:  "shit!",
			expect: "s***!",
		},
		{
			name:   "utf8 neighbors untouched",
			input:  "fuck ąćęłńśóźżäöüß fuck",
			expect: "f*** ąćęłńśóźżäöüß f***",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, d.Censor(tc.input))
		})
	}
}

func TestDictionaryPhrase(t *testing.T) {
	d := NewDictionary()
	require.NoError(t, d.Set("son of a gun", Mean|Moderate))

	tcs := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "phrase masked as one span",
			input:  "you son of a gun!",
			expect: "you s***********!",
		},
		{
			name:   "case folded across words",
			input:  "Son Of A Gun",
			expect: "S***********",
		},
		{
			name:   "leading words alone stay",
			input:  "the son of a duck",
			expect: "the son of a duck",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, d.Censor(tc.input))
		})
	}
}

func TestDictionarySet(t *testing.T) {
	d := NewDictionary()
	assert.Error(t, d.Set("", Profane))
	assert.Error(t, d.Set("   ", Profane))
	assert.Equal(t, 0, d.Len())

	require.NoError(t, d.Set("grembl", Mean|Mild))
	assert.Equal(t, 1, d.Len())

	sev, ok := d.Lookup("GREMBL")
	assert.True(t, ok)
	assert.True(t, sev.Is(Mean))

	// Registering the same word again unions severities without growing the
	// dictionary.
	require.NoError(t, d.Set("grembl", Severe))
	assert.Equal(t, 1, d.Len())
	sev, ok = d.Lookup("grembl")
	assert.True(t, ok)
	assert.True(t, sev.Is(Mean))
	assert.True(t, sev.Is(Severe))
}

func TestDictionaryLookup(t *testing.T) {
	d := Default()

	tcs := []struct {
		name   string
		word   string
		expect bool
	}{
		{
			name:   "built-in word",
			word:   "fuck",
			expect: true,
		},
		{
			name:   "case folded",
			word:   "FUCK",
			expect: true,
		},
		{
			name:   "prefix of an entry",
			word:   "fuc",
			expect: false,
		},
		{
			name:   "longer than any entry",
			word:   "fuckery",
			expect: false,
		},
		{
			name:   "clean word",
			word:   "hello",
			expect: false,
		},
		{
			name:   "empty word",
			word:   "",
			expect: false,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := d.Lookup(tc.word)
			assert.Equal(t, tc.expect, ok)
		})
	}
}

func TestDictionaryThreshold(t *testing.T) {
	d := NewDictionary()
	require.NoError(t, d.Set("spoon", Mean|Mild))
	require.NoError(t, d.Set("knife", Mean|Severe))

	d.SetThreshold(Severe)
	assert.Equal(t, Severe, d.Threshold())
	assert.Equal(t, "spoon and k****", d.Censor("spoon and knife"))

	d.SetThreshold(Any)
	assert.Equal(t, "s**** and k****", d.Censor("spoon and knife"))
}

func TestDictionaryConcurrent(t *testing.T) {
	d := NewDictionary()
	require.NoError(t, d.Set("grumble", Mean|Mild))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.Censor("grumble mumble")
			}
		}()
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				err := d.Set(fmt.Sprintf("word-%d-%d", n, j), Mild)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "g****** mumble", d.Censor("grumble mumble"))
}

func TestDefault(t *testing.T) {
	d := Default()
	require.NotNil(t, d)
	assert.Same(t, d, Default())
	assert.Greater(t, d.Len(), 0)
}
