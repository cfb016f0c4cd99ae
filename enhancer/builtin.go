/*
AI-Powered Code Reviewer - A tool for static C++ code analysis
Copyright (C) 2023  Ah2022

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package enhancer

import "github.com/Ah2022/AI-Powered-Code-Reviewer/issue"

// Explanation is the built-in fallback used when the language model is not
// reachable or not configured.
type Explanation struct {
	Explanation    string
	Recommendation string
}

const (
	defaultExplanation    = "This is a common issue in C++ programming that could cause problems."
	defaultRecommendation = "Consider reviewing the code and addressing this issue according to C++ best practices."
)

var kindExplanations = map[issue.Kind]Explanation{
	issue.MemoryLeak: {
		Explanation: "Memory leaks occur when dynamically allocated memory is not properly deallocated. " +
			"This can lead to increased memory usage over time and eventually cause your program " +
			"to run out of memory if the leak happens in frequently called code.",
		Recommendation: "Ensure every call to 'new' is matched with a corresponding 'delete', and 'new[]' " +
			"with 'delete[]'. Better yet, use smart pointers like std::unique_ptr or std::shared_ptr " +
			"which automatically manage memory for you:\n\n" +
			"```cpp\n" +
			"// Instead of:\n" +
			"int* array = new int[100];\n" +
			"// Use:\n" +
			"std::unique_ptr<int[]> array = std::make_unique<int[]>(100);\n" +
			"```",
	},
	issue.UninitializedVar: {
		Explanation: "Using uninitialized variables leads to undefined behavior because their values " +
			"are unpredictable. This can cause crashes, security vulnerabilities, or subtle bugs " +
			"that are difficult to track down.",
		Recommendation: "Always initialize variables when you declare them:\n\n" +
			"```cpp\n" +
			"// Instead of:\n" +
			"int x;\n" +
			"// Do this:\n" +
			"int x = 0; // Or another appropriate initial value\n" +
			"```",
	},
	issue.BufferOverflow: {
		Explanation: "Buffer overflows occur when a program writes data beyond the allocated memory buffer. " +
			"This is a serious security vulnerability that can lead to crashes, data corruption, " +
			"or even allow attackers to execute arbitrary code.",
		Recommendation: "Use safer alternatives to C-style string functions:\n\n" +
			"```cpp\n" +
			"// Instead of:\n" +
			"char buffer[10];\n" +
			"strcpy(buffer, input); // Unsafe\n" +
			"// Use:\n" +
			"std::string buffer = input; // Safe, handles any length\n" +
			"// Or if you must use C-style strings:\n" +
			"char buffer[10];\n" +
			"strncpy(buffer, input, sizeof(buffer) - 1);\n" +
			"buffer[sizeof(buffer) - 1] = '\\0'; // Ensure null termination\n" +
			"```",
	},
	issue.ResourceLeak: {
		Explanation: "Resource leaks happen when resources like file handles, network connections, or " +
			"database connections are not properly closed or released. This can exhaust system " +
			"resources and cause your program or even the entire system to malfunction.",
		Recommendation: "Use RAII (Resource Acquisition Is Initialization) principle by wrapping resources " +
			"in classes that manage their lifecycle:\n\n" +
			"```cpp\n" +
			"// Instead of:\n" +
			"FILE* file = fopen(filename, \"r\");\n" +
			"// Use:\n" +
			"std::ifstream file(filename);\n" +
			"// Or for C-style resources:\n" +
			"std::unique_ptr<FILE, decltype(&fclose)> file(fopen(filename, \"r\"), &fclose);\n" +
			"```",
	},
	issue.NullDereference: {
		Explanation: "Dereferencing a null pointer causes undefined behavior and typically results in a " +
			"program crash. This happens when a pointer that hasn't been initialized or has been " +
			"set to nullptr is accessed as if it points to a valid object.",
		Recommendation: "Always check if a pointer is null before dereferencing it:\n\n" +
			"```cpp\n" +
			"// Instead of:\n" +
			"return *resource; // May crash if resource is nullptr\n" +
			"// Do this:\n" +
			"if (resource != nullptr) {\n" +
			"    return *resource;\n" +
			"} else {\n" +
			"    // Handle null case appropriately\n" +
			"    return defaultValue; // Or throw an exception\n" +
			"}\n" +
			"```",
	},
	issue.StyleViolation: {
		Explanation: "Style violations may not cause functional issues, but they can make code harder to " +
			"read, maintain, and debug. Consistent style improves collaboration and can prevent bugs.",
		Recommendation: "Follow modern C++ coding guidelines and be consistent with your project's style guide. " +
			"For the specific issue, consider the suggested alternative approach.",
	},
	issue.PerformanceIssue: {
		Explanation: "Performance issues can make your code unnecessarily slow or resource-intensive. " +
			"While premature optimization should be avoided, obvious inefficiencies should be fixed.",
		Recommendation: "Look for more efficient alternatives to common operations, especially in loops " +
			"or frequently called functions. Cache values instead of recomputing them repeatedly.",
	},
	issue.DeadCode: {
		Explanation: "Dead code is code that can never be executed because it's unreachable. This clutters " +
			"your codebase, confuses readers, and might indicate logical errors in your program flow.",
		Recommendation: "Remove or fix dead code to maintain a clean codebase and prevent confusion. " +
			"If code seems unreachable but should be, fix the logical flow issue that prevents it " +
			"from being executed.",
	},
}

// Message-specific explanations override the per-kind ones.
var messageExplanations = map[string]Explanation{
	"Using directive brings all names from namespace 'std' into global namespace": {
		Explanation: "Using 'using namespace std;' imports all names from the standard library into the " +
			"global namespace. This can cause naming conflicts, make it unclear where functions " +
			"and types come from, and lead to subtle bugs when names collide.",
		Recommendation: "Instead of importing the entire namespace, either use qualified names or import " +
			"only the specific names you need:\n\n" +
			"```cpp\n" +
			"// Instead of:\n" +
			"using namespace std;\n" +
			"// Do this:\n" +
			"std::cout << \"Hello\" << std::endl;\n" +
			"// Or if you use a name frequently:\n" +
			"using std::cout;\n" +
			"using std::endl;\n" +
			"cout << \"Hello\" << endl;\n" +
			"```",
	},
}

// Builtin returns the canned explanation for an issue, preferring a
// message-specific entry over the per-kind one.
func Builtin(kind issue.Kind, message string) Explanation {
	if e, ok := messageExplanations[message]; ok {
		return e
	}
	if e, ok := kindExplanations[kind]; ok {
		return e
	}
	return Explanation{Explanation: defaultExplanation, Recommendation: defaultRecommendation}
}
