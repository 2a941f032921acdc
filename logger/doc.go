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

// Package logger is the central logging facility for beebcore. Entries are
// made up of a tag and a detail. The tag is usually the name of the package
// or the component making the entry.
//
// Repeated entries are collapsed into a single entry with a repeat count.
// Only the most recent entries are kept.
//
// Whether an entry is made at all is decided by the Permission argument. In
// most situations logger.Allow is the correct value to use but components
// that can be run in a "silent" context (for example, a machine instance
// created only for testing) can implement the Permission interface to
// suppress logging.
package logger
