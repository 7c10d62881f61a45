package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/jcorbin/yafi/internal/mem"
)

// coreImage is the post-mortem record written when the machine halts
// abnormally. It is only ever read back for inspection.
type coreImage struct {
	Error    string  `cbor:"1,keyasint"`
	Word     string  `cbor:"2,keyasint,omitempty"`
	Location string  `cbor:"3,keyasint,omitempty"`
	Stack    []int32 `cbor:"4,keyasint"`
	RStack   []int32 `cbor:"5,keyasint"`
	Memory   []byte  `cbor:"6,keyasint"`
}

var coreEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR enc mode: %v", err))
	}
	coreEncMode = em
}

func (vm *VM) coreImage(cause error) coreImage {
	return coreImage{
		Error:    cause.Error(),
		Word:     vm.word,
		Location: vm.Last.Location.String(),
		Stack:    vm.stack.Values(),
		RStack:   vm.rstack.Values(),
		Memory:   vm.mem.Image(),
	}
}

func (vm *VM) writeCoreFile(name string, cause error) (rerr error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	if rerr = writeCore(f, vm.coreImage(cause)); rerr == nil {
		vm.logf("#", "wrote core file %v", name)
	}
	return rerr
}

func writeCore(w io.Writer, core coreImage) error {
	return coreEncMode.NewEncoder(w).Encode(core)
}

func readCore(r io.Reader) (core coreImage, err error) {
	if err := cbor.NewDecoder(r).Decode(&core); err != nil {
		return core, fmt.Errorf("unable to decode core: %w", err)
	}
	if len(core.Memory)%mem.CellSize != 0 {
		return core, fmt.Errorf("invalid core memory size %v", len(core.Memory))
	}
	return core, nil
}

// dump writes a vmDumper rendition of the core.
func (core coreImage) dump(out io.Writer) error {
	m, err := mem.FromImage(core.Memory)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# Core\n")
	fmt.Fprintf(out, "  error: %v\n", core.Error)
	if core.Location != "" {
		fmt.Fprintf(out, "  location: %v\n", core.Location)
	}
	vmDumper{
		out:    out,
		stack:  core.Stack,
		rstack: core.RStack,
		mem:    m,
		word:   core.Word,
	}.dump()
	return nil
}

func inspectCoreFile(name string, out io.Writer) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	core, err := readCore(f)
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}
	return core.dump(out)
}
