package jail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSet(t *testing.T) {
	rec := &Record{}
	rec.Set("name", "web")
	rec.Set("persist", "")
	rec.Set("path", "/jail/web")

	assert.Equal(t, []string{"name", "persist", "path"}, rec.Keys())
	assert.Equal(t, 3, rec.Len())
	assert.Equal(t, "web", rec.Name())

	v, ok := rec.Get("persist")
	assert.True(t, ok, "valueless parameter is defined")
	assert.Equal(t, "", v)

	_, ok = rec.Get("ip4.addr")
	assert.False(t, ok)
}

func TestRecordSetDuplicate(t *testing.T) {
	rec := &Record{}
	rec.Set("name", "first")
	rec.Set("path", "/jail/first")
	rec.Set("name", "second")

	// last assignment wins, first position is kept
	assert.Equal(t, []string{"name", "path"}, rec.Keys())
	assert.Equal(t, "second", rec.Name())
}

type group struct {
	keys   []string
	params map[string]string
}

func TestStreamNext(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		groups []group
	}{{
		name: "two jails",
		raw:  "name=web\x00path=/jail/web\x00\x00name=db\x00\x00",
		groups: []group{{
			keys:   []string{"name", "path"},
			params: map[string]string{"name": "web", "path": "/jail/web"},
		}, {
			keys:   []string{"name"},
			params: map[string]string{"name": "db"},
		}},
	}, {
		name: "missing trailing terminator",
		raw:  "name=web\x00\x00name=db",
		groups: []group{{
			keys:   []string{"name"},
			params: map[string]string{"name": "web"},
		}, {
			keys:   []string{"name"},
			params: map[string]string{"name": "db"},
		}},
	}, {
		name:   "lone terminator",
		raw:    "\x00",
		groups: []group{{keys: []string{}, params: map[string]string{}}},
	}, {
		name: "consecutive terminators",
		raw:  "a=1\x00\x00\x00b=2\x00\x00",
		groups: []group{{
			keys:   []string{"a"},
			params: map[string]string{"a": "1"},
		}, {
			keys:   []string{},
			params: map[string]string{},
		}, {
			keys:   []string{"b"},
			params: map[string]string{"b": "2"},
		}},
	}, {
		name: "valueless and empty-valued parameters",
		raw:  "name=web\x00persist\x00allow.mount=\x00\x00",
		groups: []group{{
			keys: []string{"name", "persist", "allow.mount"},
			params: map[string]string{
				"name":        "web",
				"persist":     "",
				"allow.mount": "",
			},
		}},
	}, {
		name: "value containing equals",
		raw:  "exec.start=/bin/sh /etc/rc x=y\x00\x00",
		groups: []group{{
			keys:   []string{"exec.start"},
			params: map[string]string{"exec.start": "/bin/sh /etc/rc x=y"},
		}},
	}, {
		name:   "empty stream",
		raw:    "",
		groups: nil,
	}}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStream([]byte(tc.raw))
			rec := &Record{}
			for i, expected := range tc.groups {
				require.True(t, s.Next(rec), "group %d", i)
				assert.Equal(t, expected.keys, append([]string{}, rec.Keys()...), "group %d keys", i)
				for k, v := range expected.params {
					actual, ok := rec.Get(k)
					assert.True(t, ok, "group %d key %q", i, k)
					assert.Equal(t, v, actual, "group %d key %q", i, k)
				}
				assert.Equal(t, len(expected.params), rec.Len(), "group %d", i)
			}
			assert.False(t, s.Next(rec), "stream should be exhausted")
			assert.Equal(t, 0, rec.Len(), "record is cleared on exhaustion")
		})
	}
}

func TestStreamNextClearsRecord(t *testing.T) {
	s := NewStream([]byte("name=web\x00path=/jail/web\x00\x00name=db\x00\x00"))
	rec := &Record{}

	require.True(t, s.Next(rec))
	require.Equal(t, "web", rec.Name())

	require.True(t, s.Next(rec))
	assert.Equal(t, "db", rec.Name())
	_, ok := rec.Get("path")
	assert.False(t, ok, "previous jail's parameters must not leak")
}
