package cmds

import "testing"

func TestVar(t *testing.T) {
	a := Var[int]("TestVarFoo")
	b := Var[string]("TestVarBar")
	GlobalExecutor.MustExecute([]string{
		"TestVarFoo", "42",
		"TestVarBar", "bar",
	})
	if *a != 42 {
		t.Fatal()
	}
	if *b != "bar" {
		t.Fatal()
	}

	GlobalExecutor.MustExecute([]string{
		"TestVarFoo.",
	})
	if *a != 0 {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if *foo != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo != false {
		t.Fatal()
	}
}
