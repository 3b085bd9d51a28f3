// Package typename turns the C++ type names produced by RTTI and demangling
// into short, readable signatures.
//
// The pipeline is text only: callers obtain the raw name elsewhere (typeid,
// abi::__cxa_demangle, a debugger, compiler output) and pass it in.
//
//	typename.NormalizeTypeString("std::__1::vector<int, std::__1::allocator<int> >")
//	// std::vector<int>
//
//	typename.MemFnToLambdaType("std::__1::__mem_fn<int(Foo::$_0:: *)(int)const>", true)
//	// lambda: (int) -> int
//
// Lambdas have no nameable type, so their signature is recovered from the
// type of std::mem_fn(&Lambda::operator()), as spelled by MSVC, libc++ or
// libstdc++.
//
// Package-level functions use DefaultRules. Build a Cleaner with NewCleaner
// to apply a configured rule set; a Cleaner is safe for concurrent use.
package typename
