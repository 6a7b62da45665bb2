package procs

import (
	"errors"
	"testing"
)

type counter struct {
	n int
}

func step(name string, log *[]string) Proc[*counter] {
	return Func[*counter](func(c *counter) (Proc[*counter], error) {
		c.n++
		*log = append(*log, name)
		return nil, nil
	})
}

func TestExec(t *testing.T) {
	var log []string
	c := new(counter)
	err := Exec[*counter](c, Procs[*counter]{
		step("a", &log),
		Func[*counter](func(c *counter) (Proc[*counter], error) {
			log = append(log, "b")
			return step("b2", &log), nil
		}),
		step("c", &log),
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.n != 3 {
		t.Fatalf("got %d", c.n)
	}
	if len(log) != 4 || log[1] != "b" || log[2] != "b2" || log[3] != "c" {
		t.Fatalf("got %v", log)
	}
}

func TestExecError(t *testing.T) {
	failure := errors.New("failure")
	var log []string
	err := Exec[*counter](new(counter), Procs[*counter]{
		step("a", &log),
		Func[*counter](func(*counter) (Proc[*counter], error) {
			return nil, failure
		}),
		step("c", &log),
	})
	if !errors.Is(err, failure) {
		t.Fatalf("got %v", err)
	}
	if len(log) != 1 {
		t.Fatalf("got %v", log)
	}
}

func TestEmpty(t *testing.T) {
	if err := Exec[*counter](nil, Procs[*counter]{}); err != nil {
		t.Fatal(err)
	}
	if err := Exec[*counter](nil, nil); err != nil {
		t.Fatal(err)
	}
}
