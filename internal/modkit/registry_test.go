package modkit

import (
	"sort"
	"testing"

	phttp "showcase/internal/platform/net/http"
)

type lister interface{ List() []string }

type fakeLister struct{}

func (fakeLister) List() []string { return []string{"octocat/hello"} }

type portSet struct {
	Lister lister
	hidden lister
}

type stub struct {
	name  string
	ports any
}

func (s stub) MountRoutes(phttp.Router) {}
func (s stub) Ports() any               { return s.ports }
func (s stub) Name() string             { return s.name }

func TestRegistry_AddAndLookup(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(stub{name: "showcase", ports: portSet{Lister: fakeLister{}}}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add(stub{name: "meta"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add(stub{name: "showcase"}); err == nil {
		t.Fatal("duplicate names must be rejected")
	}

	got, ok := PortsAs[portSet](r, "showcase")
	if !ok || got.Lister == nil {
		t.Fatal("registered ports should be retrievable")
	}
	if _, ok := PortsAs[lister](r, "showcase"); ok {
		t.Fatal("wrong type must not assert")
	}
	if _, ok := PortsAs[portSet](r, "relay"); ok {
		t.Fatal("unknown name must not resolve")
	}

	names := r.Names()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "meta" || names[1] != "showcase" {
		t.Fatalf("names = %v", names)
	}
}

func TestPortOf(t *testing.T) {
	if l, ok := PortOf[lister](stub{ports: fakeLister{}}); !ok || len(l.List()) != 1 {
		t.Fatal("direct port set should resolve")
	}
	if _, ok := PortOf[lister](stub{ports: &portSet{Lister: fakeLister{}}}); !ok {
		t.Fatal("exported field behind a pointer should resolve")
	}
	if _, ok := PortOf[lister](stub{ports: portSet{hidden: fakeLister{}}}); ok {
		t.Fatal("unexported fields must not resolve")
	}
	if _, ok := PortOf[lister](stub{}); ok {
		t.Fatal("nil ports must not resolve")
	}
}
