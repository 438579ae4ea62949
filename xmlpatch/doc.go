// Package xmlpatch rewrites attribute values of <add/> elements in .NET
// configuration files without parsing the document.
//
// The file text is treated as an opaque string. A container element such as
// <appSettings> bounds the search, an identifying attribute (key="Foo" or
// name="Bar") selects the element, and only the bytes between the quotes of
// the target attribute are replaced:
//
//	<appSettings>
//	  <!-- <add key="Mode" value="old"/> -->
//	  <add key="Mode" value="debug"/>
//	</appSettings>
//
// Calling [UpdateAppSetting] with key "Mode" and value "release" changes only
// the second element, since the first lies inside a comment.
//
// Every lookup miss (no container, no identifying attribute, no target
// attribute, unterminated element) leaves the content unchanged. Nothing in
// this package reports an error.
package xmlpatch
