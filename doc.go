/*
Package containers offers ordered associative containers: sets, multisets
and maps.

Containers

All containers in this package keep their keys sorted. They are backed by
the tree engine of package bst, an unbalanced binary search tree with parent
links and a sentinel end node. Iteration visits keys in ascending order,
from Begin up to (but excluding) End. Stepping from the largest key reaches
End, and stepping back from End reaches the largest key.

	Container   |   Equal keys       |  Payload
	------------+--------------------+---------
	Set         |   rejected         |  none
	Multiset    |   kept, in order   |  none
	Map         |   rejected         |  value

Keys of cmp.Ordered types are compared with cmp.Compare; containers for other
key types are created with a comparison function (NewSetFunc and friends).

Iterators are small values. They stay valid until the key they point to is
erased; Merge moves keys between containers without invalidating iterators,
which then refer to the receiving container. The trees are not balanced:
inserting keys in sorted order builds a degenerate tree with linear depth.

Containers are not safe for concurrent use.

The sibling packages vector, list, queue and stack provide sequence
containers.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ContainerError is an error type for the containers module
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrNoSuchElement is flagged whenever a map is asked for the value of a key
// it does not contain.
const ErrNoSuchElement = ContainerError("no such element")

// ErrIllegalArguments is flagged whenever constructor parameters are invalid.
const ErrIllegalArguments = ContainerError("illegal arguments")
