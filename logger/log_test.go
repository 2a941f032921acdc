// This file is part of Beebcore.
//
// Beebcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Beebcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Beebcore.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/beebcore/logger"
	"github.com/jetsetilly/beebcore/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries is okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatAndLimit(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "same")
	log.Log(logger.Allow, "tag", "same")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: same (repeat x2)\n")

	log.Log(logger.Allow, "tag", "a")
	log.Log(logger.Allow, "tag", "b")
	log.Log(logger.Allow, "tag", "c")
	test.ExpectEquality(t, log.Len(), 3)

	w.Reset()
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: a\ntag: b\ntag: c\n")
}

type prohibit struct{}

func (_ prohibit) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	log.Log(prohibit{}, "tag", "detail")
	test.ExpectEquality(t, log.Len(), 0)
}

type stringer struct{}

func (_ stringer) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringer{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("inner"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\ntag: wrapped: inner\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}
	log.SetEcho(w)
	log.Log(logger.Allow, "echo", "on")
	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "off")
	test.ExpectEquality(t, w.String(), "echo: on\n")
}

func TestEchoTail(t *testing.T) {
	log := logger.NewLogger(10)
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)

	log.SetEcho(r)
	log.Log(logger.Allow, "a", "first")
	log.Log(logger.Allow, "b", "second")
	test.ExpectEquality(t, r.String(), "b: second\n")
}
