// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package preview

import (
	"strings"

	"uikitlab/internal/models"
)

// Element ids the frame runtime patches on every update. The stylesheet
// node is swapped in place; the script node is removed and recreated,
// because assigning new text to an existing script element does not
// re-execute it.
const (
	UserStyleID  = "user-style"
	UserScriptID = "user-script"
)

// frameRuntime is the persistent listener baked into every frame
// document. It posts IFRAME_READY once after the load event, then
// patches the document on each UPDATE_CODE message. User script errors
// are caught and logged here, inside the frame — they never reach the
// host page.
const frameRuntime = `<script>
(function(){
  window.addEventListener("load",function(){
    parent.postMessage({type:"` + MsgFrameReady + `"},"*");
  });
  window.addEventListener("message",function(ev){
    var msg=ev.data;
    if(!msg||msg.type!=="` + MsgUpdateCode + `"||!msg.code)return;
    var prev=document.getElementById("` + UserScriptID + `");
    if(prev)prev.remove();
    document.body.innerHTML=msg.code.html||"";
    document.getElementById("` + UserStyleID + `").textContent=msg.code.css||"";
    var s=document.createElement("script");
    s.id="` + UserScriptID + `";
    s.text="try{"+(msg.code.js||"")+"\n}catch(err){console.error('snippet error:',err)}";
    document.body.appendChild(s);
  });
})();
</script>`

// BuildFrameDocument assembles the build-once frame for the live preview:
// dependency header and baseline reset for the style dialect, an empty
// stylesheet slot, an empty body, and the persistent message listener.
// The document is rebuilt only when the style dialect changes — switching
// styles is a fresh load and the readiness handshake repeats. Code
// updates arrive later as UPDATE_CODE messages. Pure function of style.
func BuildFrameDocument(style models.StyleKind) string {
	var b strings.Builder
	b.Grow(len(docHead) + len(baseStyle) + len(frameRuntime) + 256)

	b.WriteString(docHead)
	b.WriteString(baseStyle)
	b.WriteString(DependencyHeader(style))
	b.WriteString(`<style id="` + UserStyleID + `"></style>`)
	b.WriteString(frameRuntime)
	b.WriteString("</head><body></body></html>")
	return b.String()
}
