package composer

// pageCSS is the stylesheet shared by all composed pages. Everything is
// scoped under vp- class names and driven by CSS variables so the tenant's
// own inlined styles (carried over via the extracted head content) keep
// winning for their elements, while the accent color follows the tenant's
// brand.
const pageCSS = `
:root{
  --vp-bg:#ffffff;--vp-fg:#111827;--vp-muted:#6b7280;
  --vp-card:#f9fafb;--vp-border:#e5e7eb;--vp-chip:#f3f4f6;
}
[data-theme="dark"]{
  --vp-bg:#0b0f14;--vp-fg:#f3f4f6;--vp-muted:#9ca3af;
  --vp-card:#151b23;--vp-border:#27303b;--vp-chip:#1d242e;
}
.vp-body{margin:0;background:var(--vp-bg);color:var(--vp-fg);
  font-family:system-ui,-apple-system,'Segoe UI',sans-serif;line-height:1.6;}
.vp-main{min-height:60vh;}
.vp-shell{max-width:72rem;margin:0 auto;padding:2rem 1.25rem;}
.vp-main a{color:var(--vp-accent);}
.vp-blog-head{display:flex;flex-wrap:wrap;gap:1rem;align-items:center;
  justify-content:space-between;margin-bottom:1.5rem;}
.vp-blog-head h1{margin:0;font-size:2rem;}
.vp-search{display:flex;gap:.5rem;}
.vp-search input[type=search]{padding:.5rem .75rem;border:1px solid var(--vp-border);
  border-radius:.5rem;background:var(--vp-card);color:var(--vp-fg);min-width:14rem;}
.vp-search button{padding:.5rem 1rem;border:none;border-radius:.5rem;
  background:var(--vp-accent);color:#fff;cursor:pointer;}
.vp-chips{display:flex;flex-wrap:wrap;gap:.5rem;margin-bottom:1rem;}
.vp-chip{padding:.3rem .85rem;border-radius:999px;background:var(--vp-chip);
  color:var(--vp-fg);text-decoration:none;font-size:.875rem;border:1px solid var(--vp-border);}
.vp-chip:hover{border-color:var(--vp-accent);}
.vp-chip-active{background:var(--vp-accent);color:#fff;border-color:var(--vp-accent);}
.vp-chip-count{opacity:.7;font-size:.75rem;}
.vp-active-filter{color:var(--vp-muted);margin:0 0 1.25rem;}
.vp-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(18rem,1fr));
  gap:1.5rem;margin:0;padding:0;}
.vp-card{background:var(--vp-card);border:1px solid var(--vp-border);
  border-radius:.75rem;overflow:hidden;display:flex;flex-direction:column;}
.vp-card-cover{width:100%;height:11rem;object-fit:cover;display:block;}
.vp-card-body{padding:1.1rem 1.25rem 1.25rem;display:flex;flex-direction:column;gap:.4rem;}
.vp-card-category{color:var(--vp-accent);font-size:.75rem;font-weight:600;
  text-transform:uppercase;letter-spacing:.06em;}
.vp-card-title{margin:0;font-size:1.2rem;line-height:1.35;}
.vp-card-title a{color:var(--vp-fg);text-decoration:none;}
.vp-card-title a:hover{color:var(--vp-accent);}
.vp-card-excerpt{margin:0;color:var(--vp-muted);font-size:.925rem;
  display:-webkit-box;-webkit-line-clamp:3;-webkit-box-orient:vertical;overflow:hidden;}
.vp-card-meta{margin-top:auto;padding-top:.6rem;display:flex;flex-wrap:wrap;
  gap:.5rem;align-items:center;color:var(--vp-muted);font-size:.8rem;}
.vp-tag{color:var(--vp-accent);text-decoration:none;font-size:.8rem;}
.vp-tag:hover{text-decoration:underline;}
.vp-tag-active{font-weight:700;text-decoration:underline;}
.vp-tag-cloud{margin-top:2.5rem;padding-top:1.25rem;border-top:1px solid var(--vp-border);
  display:flex;flex-wrap:wrap;gap:.35rem .85rem;}
.vp-empty{text-align:center;padding:4rem 0;color:var(--vp-muted);}
.vp-post-shell{max-width:46rem;}
.vp-post-head{margin-bottom:1.5rem;}
.vp-post-category{color:var(--vp-accent);font-weight:600;font-size:.8rem;
  text-transform:uppercase;letter-spacing:.06em;text-decoration:none;margin-right:.75rem;}
.vp-post-date{color:var(--vp-muted);font-size:.875rem;}
.vp-post-title{margin:.4rem 0 0;font-size:2.25rem;line-height:1.2;}
.vp-post-lede{color:var(--vp-muted);font-size:1.15rem;margin:.75rem 0 0;}
.vp-post-cover{width:100%;border-radius:.75rem;margin-bottom:1.5rem;}
.vp-post-content{font-size:1.05rem;}
.vp-post-content img{max-width:100%;border-radius:.5rem;}
.vp-post-foot{margin-top:2.5rem;padding-top:1.25rem;border-top:1px solid var(--vp-border);
  display:flex;flex-wrap:wrap;gap:1rem;justify-content:space-between;align-items:center;}
.vp-post-tags{display:flex;flex-wrap:wrap;gap:.35rem .75rem;}
.vp-share{display:flex;gap:.4rem;align-items:center;}
.vp-share-label{color:var(--vp-muted);font-size:.8rem;margin-right:.25rem;}
.vp-share-btn{padding:.3rem .7rem;border:1px solid var(--vp-border);border-radius:.4rem;
  background:var(--vp-card);color:var(--vp-fg);font-size:.8rem;cursor:pointer;}
.vp-share-btn:hover{border-color:var(--vp-accent);color:var(--vp-accent);}
.vp-related{margin-top:2.5rem;}
.vp-related h2{font-size:1.1rem;}
.vp-related ul{list-style:none;margin:0;padding:0;display:flex;flex-direction:column;gap:.5rem;}
.vp-related li{display:flex;justify-content:space-between;gap:1rem;}
.vp-related time{color:var(--vp-muted);font-size:.8rem;white-space:nowrap;}
.vp-back{margin-top:2rem;}
.vp-theme-toggle{position:fixed;right:1.25rem;bottom:1.25rem;width:2.75rem;height:2.75rem;
  border-radius:999px;border:1px solid var(--vp-border);background:var(--vp-card);
  color:var(--vp-fg);cursor:pointer;font-size:1.1rem;box-shadow:0 2px 8px rgba(0,0,0,.15);}
[data-theme="dark"] .vp-toggle-dark{display:none;}
[data-theme="light"] .vp-toggle-light{display:none;}
.vp-fallback-header{border-bottom:1px solid var(--vp-border);background:var(--vp-bg);}
.vp-fallback-header .vp-shell{display:flex;justify-content:space-between;
  align-items:center;padding-top:1rem;padding-bottom:1rem;}
.vp-brand{font-weight:700;font-size:1.1rem;color:var(--vp-fg);text-decoration:none;}
.vp-fallback-nav{display:flex;gap:1.25rem;}
.vp-fallback-nav a{color:var(--vp-fg);text-decoration:none;}
.vp-fallback-nav a:hover{color:var(--vp-accent);}
.vp-fallback-footer{border-top:1px solid var(--vp-border);color:var(--vp-muted);
  font-size:.875rem;}
`

// themeScript seeds the theme from the visitor's stored per-tenant
// preference and wires the floating toggle. The server-detected mode is
// only the default; the preference always wins.
const themeScript = `
(function(){
  var btn=document.getElementById('vp-theme-toggle');
  var key='vp-theme:'+(btn?btn.getAttribute('data-project'):'');
  var root=document.documentElement;
  try{
    var stored=localStorage.getItem(key);
    if(stored==='dark'||stored==='light'){root.setAttribute('data-theme',stored);}
  }catch(e){}
  if(!btn){return;}
  btn.addEventListener('click',function(){
    var next=root.getAttribute('data-theme')==='dark'?'light':'dark';
    root.setAttribute('data-theme',next);
    try{localStorage.setItem(key,next);}catch(e){}
  });
})();
`

// shareScript fills share targets from the page's own location. The same
// post is reachable via subdomain and custom domain, so the server cannot
// know the canonical URL at render time.
const shareScript = `
(function(){
  var buttons=document.querySelectorAll('[data-share]');
  for(var i=0;i<buttons.length;i++){
    buttons[i].addEventListener('click',function(){
      var url=encodeURIComponent(window.location.href);
      var title=encodeURIComponent(document.title);
      var kind=this.getAttribute('data-share');
      if(kind==='twitter'){
        window.open('https://twitter.com/intent/tweet?url='+url+'&text='+title,'_blank');
      }else if(kind==='facebook'){
        window.open('https://www.facebook.com/sharer/sharer.php?u='+url,'_blank');
      }else if(kind==='linkedin'){
        window.open('https://www.linkedin.com/sharing/share-offsite/?url='+url,'_blank');
      }else if(kind==='copy'){
        var self=this;
        navigator.clipboard.writeText(window.location.href).then(function(){
          var old=self.textContent;
          self.textContent='Copied!';
          setTimeout(function(){self.textContent=old;},1500);
        });
      }
    });
  }
})();
`

// notFoundCSS styles the generic tenant-miss page
const notFoundCSS = `
body{margin:0;background:#0b0f14;color:#f3f4f6;
  font-family:system-ui,-apple-system,'Segoe UI',sans-serif;}
.nf-wrap{min-height:100vh;display:flex;flex-direction:column;
  align-items:center;justify-content:center;text-align:center;padding:2rem;}
.nf-code{font-size:4rem;font-weight:800;margin:0;color:#22c55e;}
.nf-wrap h1{margin:.25rem 0 0;font-size:1.5rem;}
.nf-detail{color:#9ca3af;}
`
