/*
Package registry holds the table of known entity kinds and entity definitions.

A Registry is an explicit configuration object built once at process start and
passed by reference to whatever needs it. There is no package-level state.

Default Entities:
The root kind is declared statically:

	postType  key=slug  /wp/v2/types
	media     plural=mediaItems  /wp/v2/media
	taxonomy  key=slug  plural=taxonomies  /wp/v2/taxonomies

Kinds:
A KindConfig names a kind whose entities are only known at runtime and the
function that loads them:

	reg := registry.New(
	    registry.WithKinds(loader.PostTypeKind(client)),
	)

Method Names:
GetMethodName derives the conventional accessor name for an entity:

	reg.GetMethodName("postType", "page", "get", false) // getPostTypePage
	reg.GetMethodName("root", "media", "get", true)     // getMediaItems

Entities are additive: definitions recorded with AddEntities are never
removed, and a (kind, name) pair is recorded once.
*/
package registry
